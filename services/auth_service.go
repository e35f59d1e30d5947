package services

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/errors"
	"github.com/DC-NERI/innWise-sub001/models"
)

// UserInfo is the claim payload embedded in access tokens.
type UserInfo struct {
	UserID   uint  `json:"userid"`
	TenantID uint  `json:"tenantId"`
	BranchID *uint `json:"branchId,omitempty"`
	Role     int   `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// AuthService handles staff login and user administration. Passwords are
// stored bcrypt-hashed and compared with bcrypt only.
type AuthService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewAuthService(db *gorm.DB, audit *AuditService) *AuthService {
	if audit == nil {
		audit = NewAuditService()
	}
	return &AuthService{db: db, audit: audit}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func secretKey() []byte {
	return []byte(os.Getenv("SECRET_KEY_ACCESS_TOKEN"))
}

// GenerateToken signs an HS256 access token carrying the user claims.
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// Login verifies credentials and returns a signed token with the user.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	var user models.User
	err := s.db.Where("email = ?", req.Email).First(&user).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "invalid email or password", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
	}
	if user.Status != constants.UserStatusActive {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "account is inactive", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidPassword, "invalid email or password", nil)
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to record login", err)
	}
	user.LastLoginAt = &now

	token, err := GenerateToken(UserInfo{
		UserID:   user.ID,
		TenantID: user.TenantID,
		BranchID: user.BranchID,
		Role:     user.Role,
	}, 12*60)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to sign token", err)
	}

	if err := s.audit.Record(s.db, AuditEntry{
		TenantID:    user.TenantID,
		BranchID:    user.BranchID,
		UserID:      user.ID,
		Action:      models.AuditUserLogin,
		Description: fmt.Sprintf("%s logged in", user.Email),
		TargetType:  "user",
		TargetID:    user.ID,
	}); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to record login audit", err)
	}

	return &dto.LoginResponse{AccessToken: token, User: &user}, nil
}

// CreateUser registers a staff account under a tenant.
func (s *AuthService) CreateUser(req dto.CreateUserRequest, actorID uint) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, errors.NewAppError(errors.ErrCodeUserExists,
			fmt.Sprintf("email %s is already in use", req.Email), nil)
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to hash password", err)
	}

	user := models.User{
		TenantID:    req.TenantID,
		BranchID:    req.BranchID,
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		Status:      constants.UserStatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return s.audit.Record(tx, AuditEntry{
			TenantID:    req.TenantID,
			BranchID:    req.BranchID,
			UserID:      actorID,
			Action:      models.AuditUserCreated,
			Description: fmt.Sprintf("User %s created with role %d", req.Email, req.Role),
			TargetType:  "user",
			TargetID:    user.ID,
		})
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, errors.NewAppError(errors.ErrCodeUserExists,
				fmt.Sprintf("email %s is already in use", req.Email), err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create user", err)
	}
	return &user, nil
}

// UpdateUser edits profile/status fields for a staff account.
func (s *AuthService) UpdateUser(req dto.UpdateUserRequest, tenantID uint) (*models.User, error) {
	var user models.User
	err := s.db.Where("tenant_id = ?", tenantID).First(&user, req.UserID).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "user not found", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		updates["phone_number"] = req.PhoneNumber
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update user", err)
		}
	}
	return &user, nil
}

// ListUsers pages through a tenant's staff.
func (s *AuthService) ListUsers(tenantID uint, branchID *uint, page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := s.db.Model(&models.User{}).Where("tenant_id = ?", tenantID)
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

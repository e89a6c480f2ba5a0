package models

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/castellodata/payroll_backend/config"
	"github.com/castellodata/payroll_backend/utils"
	"github.com/google/uuid"
)

type User struct {
	ID           int       `gorm:"primary_key" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email        string    `gorm:"size:100;not null;unique" json:"email" binding:"required"`
	Role         UserRole  `gorm:"type:enum('ADMIN', 'HR');default:HR" json:"role"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsActive     *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	Role     UserRole `json:"role" binding:"required"`
	Password string   `json:"password" binding:"required"`
}

/*
caches:
	User:$email
	Token:$token => email
	Tokens:$email => set of live tokens
*/

func (user User) RemoveInstanceRedis() error {
	return config.RemoveRedisKey("User:" + user.Email)
}

type LoginInfo struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {
	if !utils.IsValidEmail(input.Email) {
		return nil, errors.New("invalid email")
	}
	if err := utils.ValidateUnique[User](ctx, "email", input.Email, 0); err != nil {
		return nil, err
	}
	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	user := User{
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		PasswordHash: string(hashed),
		IsActive:     utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user := User{}
	exists, err := config.GetRedisObject("User:"+email, &user)
	if err != nil {
		return nil, err
	}
	if !exists {
		db := config.GetDB()
		if err := db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Take(&user).Error; err != nil {
			return nil, utils.ErrorRecordNotFound
		}
	}
	return &user, nil
}

// credentialsMatch reports whether the plaintext matches the stored hash.
// Any comparison failure, including a malformed stored hash, is a mismatch.
func credentialsMatch(passwordHash string, password string) bool {
	return utils.ComparePassword(passwordHash, password) == nil
}

func Login(ctx context.Context, email string, password string) (*LoginInfo, error) {

	var result LoginInfo

	user, err := GetUserByEmail(ctx, email)
	if err != nil {
		return &result, errors.New("invalid email or password")
	}

	if !credentialsMatch(user.PasswordHash, password) {
		return &result, errors.New("invalid email or password")
	}

	if !*user.IsActive {
		return &result, errors.New("user is disabled")
	}

	// generate token & response
	token := uuid.New()
	result.Token = token.String()
	result.Name = user.Name
	result.Email = user.Email
	result.Role = string(user.Role)

	tokenLifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
	if err != nil {
		tokenLifespan = 24
	}

	// add new token to the user's tokens set, then store the session
	if err := config.AddRedisSet("Tokens:"+user.Email, token.String()); err != nil {
		return nil, err
	}
	if err := config.SetRedisValue("Token:"+token.String(), user.Email, time.Duration(tokenLifespan)*time.Hour); err != nil {
		return &result, err
	}

	return &result, nil
}

// destroy current session
func Logout(ctx context.Context) (bool, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || token == "" {
		return false, errors.New("token is required")
	}
	if err := config.RemoveRedisKey("Token:" + token); err != nil {
		return false, nil
	}
	// remove current token from the tokens list
	email, ok := utils.GetEmailFromContext(ctx)
	if !ok || email == "" {
		return false, errors.New("user not found")
	}
	if err := config.RemoveRedisSetMember("Tokens:"+email, token); err != nil {
		return false, err
	}
	return true, nil
}

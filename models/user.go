package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/raihanahmadkhan/fintrak-backend/config"
	"github.com/raihanahmadkhan/fintrak-backend/utils"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID         int      `gorm:"primary_key" json:"id"`
	Name       string   `gorm:"size:100;not null" json:"name" binding:"required"`
	Email      string   `gorm:"size:100;not null;unique" json:"email" binding:"required"`
	Phone      string   `gorm:"size:20" json:"phone,omitempty"`
	Password   string   `gorm:"size:255;not null" json:"-"`
	Role       UserRole `gorm:"type:enum('employee','manager','admin');default:'employee'" json:"role"`
	ManagerId  int      `gorm:"index;default:0" json:"manager_id,omitempty"`
	Department string   `gorm:"size:100" json:"department"`
	IsActive   *bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required"`
	ManagerId  int    `json:"manager_id"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

type LoginInfo struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

/*
caches:
	User:$userId
*/

func userCacheKey(id int) string {
	return "User:" + fmt.Sprint(id)
}

func (user User) RemoveInstanceRedis() error {
	return config.RemoveRedisKey(userCacheKey(user.ID))
}

func (result *User) PrepareGive() {
	result.Password = ""
}

// role is immutable after signup; there is no update path for it anywhere.
func Signup(ctx context.Context, input *NewUser) (*User, error) {

	role, err := ParseUserRole(input.Role)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateUnique[User](ctx, "email", input.Email, 0); err != nil {
		return nil, err
	}

	if input.Phone != "" {
		if err := utils.ValidatePhoneNumber(input.Phone, defaultPhoneRegion()); err != nil {
			return nil, errors.New("invalid phone number")
		}
	}

	// managerId must reference a manager or admin. Employees always report to
	// someone; managers may be root (no manager); admins have none.
	switch role {
	case UserRoleEmployee:
		if input.ManagerId == 0 {
			return nil, errors.New("manager is required")
		}
	case UserRoleManager, UserRoleAdmin:
		// optional / none
	}
	if input.ManagerId != 0 {
		count, err := utils.ResourceCountWhere[User](ctx, "id = ? AND role IN ?",
			input.ManagerId, []UserRole{UserRoleManager, UserRoleAdmin})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, errors.New("manager not found")
		}
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	active := true
	user := User{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Password:   string(hashed),
		Role:       role,
		ManagerId:  input.ManagerId,
		Department: input.Department,
		IsActive:   &active,
	}

	db := config.GetDB()
	if db == nil {
		return nil, utils.ErrUpstreamUnavailable
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	user.PrepareGive()
	return &user, nil
}

func Login(ctx context.Context, email string, password string) (*LoginInfo, error) {

	db := config.GetDB()
	if db == nil {
		return nil, utils.ErrUpstreamUnavailable
	}

	var user User
	if err := db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := utils.ComparePassword(user.Password, password); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return nil, errors.New("invalid email or password")
		}
		return nil, err
	}

	if user.IsActive != nil && !*user.IsActive {
		return nil, errors.New("user is disabled")
	}

	token, err := utils.JwtGenerate(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	// token allow-list; best effort, sessions still work when redis is down
	if err := config.SetRedisValue("Token:"+token, fmt.Sprint(user.ID), utils.TokenLifespan()); err != nil {
		config.LogError(config.GetLogger(), "user.go", "Login", "SetRedisValue", user.ID, err)
	}
	if err := config.AddRedisSet("Tokens:"+fmt.Sprint(user.ID), token); err != nil {
		config.LogError(config.GetLogger(), "user.go", "Login", "AddRedisSet", user.ID, err)
	}

	user.PrepareGive()
	return &LoginInfo{Token: token, User: &user}, nil
}

// destroy current session
func Logout(ctx context.Context) (bool, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || token == "" {
		return false, utils.ErrUnauthenticated
	}
	if err := config.RemoveRedisKey("Token:" + token); err != nil {
		return false, err
	}
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		return false, utils.ErrUnauthenticated
	}
	if err := config.RemoveRedisSetMember("Tokens:"+fmt.Sprint(userId), token); err != nil {
		return false, err
	}
	return true, nil
}

// GetUser reads through the redis cache; used on every authenticated request.
func GetUser(ctx context.Context, id int) (*User, error) {
	var user User
	exists, err := config.GetRedisObject(userCacheKey(id), &user)
	if err != nil {
		return nil, err
	}
	if exists {
		return &user, nil
	}

	result, err := utils.FetchModel[User](ctx, id)
	if err != nil {
		return nil, err
	}

	if err := config.SetRedisObject(userCacheKey(id), result, utils.TokenLifespan()); err != nil {
		config.LogError(config.GetLogger(), "user.go", "GetUser", "SetRedisObject", id, err)
	}
	return result, nil
}

// CurrentUser resolves the authenticated caller from the request context.
func CurrentUser(ctx context.Context) (*User, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == 0 {
		return nil, utils.ErrUnauthenticated
	}
	return GetUser(ctx, userId)
}

type ProfileUpdate struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UpdateProfile changes name and/or password for the caller. Role and
// managerId are deliberately not updatable here.
func UpdateProfile(ctx context.Context, input *ProfileUpdate) (*User, error) {
	user, err := CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}
	if len(updates) == 0 {
		user.PrepareGive()
		return user, nil
	}

	db := config.GetDB()
	if db == nil {
		return nil, utils.ErrUpstreamUnavailable
	}
	if err := db.WithContext(ctx).Model(&User{ID: user.ID}).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := user.RemoveInstanceRedis(); err != nil {
		config.LogError(config.GetLogger(), "user.go", "UpdateProfile", "RemoveInstanceRedis", user.ID, err)
	}

	updated, err := utils.FetchModel[User](ctx, user.ID)
	if err != nil {
		return nil, err
	}
	updated.PrepareGive()
	return updated, nil
}

// ListUsersByRole backs the signup manager-selection list and the admin
// employee directory. Read-only; requires authentication only for non-manager
// roles (the signup form runs unauthenticated).
func ListUsersByRole(ctx context.Context, role UserRole) ([]*User, error) {
	results, err := utils.FetchModelsWhere[User](ctx, "role = ?", role)
	if err != nil {
		return nil, err
	}
	for _, u := range results {
		u.PrepareGive()
	}
	return results, nil
}

func ListUsers(ctx context.Context) ([]*User, error) {
	results, err := utils.FetchAllModels[User](ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range results {
		u.PrepareGive()
	}
	return results, nil
}

// MapUsers returns id -> user for the loader middleware.
func MapUsers(ctx context.Context, ids []int) (map[int]*User, error) {
	results, err := utils.FetchModelsWhere[User](ctx, "id IN ?", ids)
	if err != nil {
		return nil, err
	}
	resultMap := make(map[int]*User, len(results))
	for _, u := range results {
		u.PrepareGive()
		resultMap[u.ID] = u
	}
	return resultMap, nil
}

func defaultPhoneRegion() string {
	return "IN"
}

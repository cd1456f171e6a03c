package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raihanahmadkhan/fintrak-backend/models"
	"github.com/raihanahmadkhan/fintrak-backend/utils"
)

func signupHandler(c *gin.Context) {
	var input models.NewUser
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := models.Signup(ctx, &input); err != nil {
		if err == utils.ErrUpstreamUnavailable {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// issue a session right away so the client lands logged in
	info, err := models.Login(ctx, input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, info)
}

func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	info, err := models.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == utils.ErrUpstreamUnavailable {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

func logoutHandler(c *gin.Context) {
	ok, err := models.Logout(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

func listUsersHandler(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := models.CurrentUser(ctx); err != nil {
		respondError(c, err)
		return
	}

	users, err := models.ListUsers(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// listManagersHandler is public: the signup form needs the manager list
// before any session exists.
func listManagersHandler(c *gin.Context) {
	managers, err := models.ListUsersByRole(c.Request.Context(), models.UserRoleManager)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, managers)
}

func currentUserHandler(c *gin.Context) {
	user, err := models.CurrentUser(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	user.PrepareGive()
	c.JSON(http.StatusOK, user)
}

func updateProfileHandler(c *gin.Context) {
	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := models.UpdateProfile(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

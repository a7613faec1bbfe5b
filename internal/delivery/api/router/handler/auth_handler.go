package handler

import (
	"log/slog"
	"net/http"

	"fileshare/internal/delivery/api/response"
	"fileshare/internal/delivery/api/validator"
	deliverycontext "fileshare/internal/delivery/context"
	"fileshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	OTPUC     usecase.OTPUsecase
	SessionUC usecase.SessionUsecase
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// AuthHandler serves sign-in and profile endpoints.
type AuthHandler struct {
	otpUC     usecase.OTPUsecase
	sessionUC usecase.SessionUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		otpUC:     params.OTPUC,
		sessionUC: params.SessionUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// SendOTPRequest represents the request body for requesting a code.
type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// VerifyOTPRequest represents the request body for verifying a code.
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
	Name        string `json:"name" validate:"omitempty,min=2,max=100"`
}

// ExternalLoginRequest represents the request body for identity provider sign-in.
type ExternalLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	Name    string `json:"name" validate:"omitempty,min=2,max=100"`
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email          *string `json:"email" validate:"omitempty,email"`
	ProfilePicture *string `json:"profilePicture" validate:"omitempty,url"`
}

// SendOTP handles POST /auth/send-otp.
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req SendOTPRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.otpUC.IssueCode(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "OTP sent successfully"
	if !out.Delivered {
		message = out.DeliveryError
	}

	return response.Success(c, http.StatusOK, message, map[string]any{
		"phoneNumber": out.PhoneNumber,
		"isNewUser":   out.IsNewUser,
		"delivered":   out.Delivered,
	})
}

// VerifyOTP handles POST /auth/verify-otp.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.otpUC.VerifyCode(c.Request().Context(), usecase.VerifyCodeInput{
		PhoneNumber: req.PhoneNumber,
		Code:        req.OTP,
		Name:        req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Login successful", &SessionView{
		Token:     out.Session.Token,
		ExpiresAt: out.Session.ExpiresAt,
		User:      newUserView(out.User),
		IsNewUser: out.Created,
	})
}

// ExternalLogin handles POST /auth/external.
func (h *AuthHandler) ExternalLogin(c echo.Context) error {
	var req ExternalLoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.sessionUC.ExternalLogin(c.Request().Context(), usecase.ExternalLoginInput{
		IDToken: req.IDToken,
		Name:    req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Login successful", &SessionView{
		Token:     out.Session.Token,
		ExpiresAt: out.Session.ExpiresAt,
		User:      newUserView(out.User),
		IsNewUser: out.Created,
	})
}

// GetProfile handles GET /auth/profile.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Profile retrieved", newUserView(user))
}

// UpdateProfile handles PUT /auth/profile.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:           req.Name,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "Profile updated successfully", newUserView(user))
}

// bindAndValidate decodes the body into req and checks its tags. When it reports false the 400
// response has been written and the handler returns the accompanying error.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BadRequest(c, "INVALID_INPUT", "Malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	return true, nil
}

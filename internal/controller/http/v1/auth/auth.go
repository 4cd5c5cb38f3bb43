package auth

import (
	"net/http"

	"crm/backend/foundation/web"
	appAuth "crm/backend/internal/auth"
	"crm/backend/internal/repository/postgres/user"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Controller struct {
	user User
	auth *appAuth.Auth
}

func NewController(user User, auth *appAuth.Auth) *Controller {
	return &Controller{user: user, auth: auth}
}

// Register creates an account, and for the employee role its linked
// profile. The response view never contains the password hash.
func (uc Controller) Register(c *web.Context) error {
	var data user.RegisterRequest

	if err := c.BindFunc(&data, "Email", "Password", "Name"); err != nil {
		return c.RespondError(err)
	}

	view, err := uc.user.Register(c.Ctx, data)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondOK("User registered successfully", view)
}

// SignIn validates credentials and issues a bearer token. Unknown email
// and wrong password share one generic message so callers cannot probe
// which accounts exist; a deactivated account gets its own message.
func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	if err := c.BindFunc(&data, "Email", "Password"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid email or password"), http.StatusUnauthorized))
	}

	if !detail.IsActive {
		return c.RespondError(web.NewRequestError(errors.New("user account is inactive"), http.StatusUnauthorized))
	}

	accessToken, err := uc.auth.GenerateToken(detail.ID, detail.Email, detail.Role)
	if err != nil {
		return c.RespondError(err)
	}

	return c.RespondOK("Login successful", map[string]interface{}{
		"accessToken": accessToken,
		"user": map[string]interface{}{
			"id":    detail.ID,
			"email": detail.Email,
			"name":  detail.Name,
			"role":  detail.Role,
		},
	})
}

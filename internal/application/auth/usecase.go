package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/salon-api/internal/application/dto"
	"github.com/jhoicas/salon-api/internal/domain"
	"github.com/jhoicas/salon-api/internal/domain/entity"
	"github.com/jhoicas/salon-api/internal/domain/repository"
	"github.com/jhoicas/salon-api/pkg/jwt"
	"github.com/jhoicas/salon-api/pkg/secure"
)

const otpDigits = 6

// TokenConfig secretos y TTLs independientes para access y refresh.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// OtpTTL tiempos de vida por propósito.
type OtpTTL struct {
	Signup time.Duration
	Reset  time.Duration
}

// AuthUseCase orquesta signup, verificación por OTP, login local y con
// Google, refresh de sesión, recuperación de contraseña y la postulación
// pública de estilistas.
type AuthUseCase struct {
	users    repository.UserRepository
	stylists repository.StylistRepository
	otp      OtpStore
	email    EmailSender
	sms      SMSSender
	google   GoogleVerifier
	audit    AuditRecorder
	tx       TxRunner
	tokens   TokenConfig
	ttl      OtpTTL
}

// NewAuthUseCase construye el caso de uso de auth con todos sus colaboradores.
func NewAuthUseCase(
	users repository.UserRepository,
	stylists repository.StylistRepository,
	otp OtpStore,
	email EmailSender,
	sms SMSSender,
	google GoogleVerifier,
	audit AuditRecorder,
	tx TxRunner,
	tokens TokenConfig,
	ttl OtpTTL,
) *AuthUseCase {
	return &AuthUseCase{
		users:    users,
		stylists: stylists,
		otp:      otp,
		email:    email,
		sms:      sms,
		google:   google,
		audit:    audit,
		tx:       tx,
		tokens:   tokens,
		ttl:      ttl,
	}
}

// Signup registra un cliente. Requiere al menos un canal (email o teléfono);
// si vienen ambos, el email es el canal autoritativo. La cuenta nace con
// isActive=false y status=ACTIVE: la usabilidad la gobierna isActive hasta que
// el OTP se verifique.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.SignupResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	phone := strings.TrimSpace(in.Phone)

	if email == "" && phone == "" {
		return nil, domain.ErrEmailOrPhoneRequired
	}

	if email != "" {
		existing, err := uc.users.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailExists
		}
	}
	if phone != "" {
		existing, err := uc.users.FindByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrPhoneExists
		}
	}

	hash, err := secure.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		AuthProvider: entity.ProviderLocal,
		Role:         entity.RoleUser,
		IsActive:     false,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// El envío ocurre después de persistir; un fallo aquí deja la cuenta
	// creada sin código entregado (el usuario puede pedir reenvío).
	if email != "" {
		if err := uc.sendEmailOtp(ctx, PurposeSignup, email, uc.ttl.Signup); err != nil {
			return nil, err
		}
		return &dto.SignupResponse{Message: "registro exitoso, verifica el OTP enviado a tu email", UserID: user.ID}, nil
	}

	if err := uc.sendSmsOtp(ctx, PurposeSignup, phone, uc.ttl.Signup); err != nil {
		return nil, err
	}
	return &dto.SignupResponse{Message: "registro exitoso, verifica el OTP enviado a tu teléfono", UserID: user.ID}, nil
}

// VerifyOtp consume el OTP de signup por email y activa la cuenta.
func (uc *AuthUseCase) VerifyOtp(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)

	if err := uc.otp.Verify(ctx, PurposeSignup, ChannelEmail, email, code); err != nil {
		return err
	}
	user, err := uc.users.MarkEmailVerified(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		// el usuario desapareció entre la emisión del OTP y su verificación
		return domain.ErrUserNotFound
	}
	uc.audit.Record(ctx, "user.email_verified", user.ID, map[string]string{"email": email})
	return nil
}

// VerifySignupSmsOtp consume el OTP de signup por SMS y activa la cuenta.
func (uc *AuthUseCase) VerifySignupSmsOtp(ctx context.Context, phone, code string) error {
	phone = strings.TrimSpace(phone)

	if err := uc.otp.Verify(ctx, PurposeSignup, ChannelSMS, phone, code); err != nil {
		return err
	}
	user, err := uc.users.MarkPhoneVerified(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	uc.audit.Record(ctx, "user.phone_verified", user.ID, map[string]string{"phone": phone})
	return nil
}

// ResendEmailOtp reemite el OTP de signup por email. El código anterior queda
// invalidado porque Generate sobrescribe la clave.
func (uc *AuthUseCase) ResendEmailOtp(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.sendEmailOtp(ctx, PurposeSignup, email, uc.ttl.Signup)
}

// ResendSmsOtp reemite el OTP de signup por SMS.
func (uc *AuthUseCase) ResendSmsOtp(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	user, err := uc.users.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.sendSmsOtp(ctx, PurposeSignup, phone, uc.ttl.Signup)
}

// Login verifica credenciales contra email o teléfono y emite el par de
// tokens atado al tabID del caller. El mensaje de credenciales inválidas es
// idéntico exista o no la cuenta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, tabID string) (*dto.LoginResponse, error) {
	identifier := strings.TrimSpace(in.Identifier)

	user, err := uc.users.FindByEmailOrPhone(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Role != in.Role {
		return nil, domain.ErrRoleMismatch
	}
	if user.AuthProvider == entity.ProviderGoogle {
		return nil, domain.ErrUseGoogleLogin
	}
	if user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, domain.ErrUserBlocked
	}
	if !user.IsActive {
		return nil, domain.ErrUserNotVerified
	}
	if !secure.CheckPassword(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := uc.issueTokens(user, tabID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{User: *toUserResponse(user), Tokens: *tokens}, nil
}

// GoogleLogin valida el id_token y auto-provisiona una cuenta USER la primera
// vez. Nunca crea cuentas STYLIST/ADMIN por esta vía.
func (uc *AuthUseCase) GoogleLogin(ctx context.Context, idToken, tabID string) (*dto.LoginResponse, error) {
	identity, err := uc.google.Verify(ctx, idToken)
	if err != nil {
		return nil, domain.ErrInvalidGoogleToken
	}
	if identity.Email == "" || identity.Subject == "" {
		return nil, domain.ErrInvalidGoogleToken
	}
	email := normalizeEmail(identity.Email)

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil && user.IsBlocked {
		return nil, domain.ErrUserBlocked
	}

	if user == nil {
		name := identity.Name
		if name == "" {
			name = "Google User"
		}
		now := time.Now()
		user = &entity.User{
			ID:            uuid.New().String(),
			Name:          name,
			Email:         email,
			EmailVerified: true,
			AuthProvider:  entity.ProviderGoogle,
			GoogleID:      identity.Subject,
			Role:          entity.RoleUser,
			IsActive:      true,
			Status:        entity.UserStatusActive,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uc.users.Create(ctx, user); err != nil {
			return nil, err
		}
		uc.audit.Record(ctx, "user.google_provisioned", user.ID, map[string]string{"email": email})
	}

	if user.Role != entity.RoleUser {
		return nil, domain.ErrGoogleOnlyUsers
	}

	tokens, err := uc.issueTokens(user, tabID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{User: *toUserResponse(user), Tokens: *tokens}, nil
}

// Refresh valida el refresh token, re-resuelve el usuario (para atrapar
// cuentas bloqueadas después de emitido el token) y emite un par nuevo.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken, tabID string) (*dto.LoginResponse, error) {
	if refreshToken == "" {
		return nil, domain.ErrNoRefreshToken
	}
	claims, err := jwt.Parse(uc.tokens.RefreshSecret, refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if claims.TabID != "" && tabID != "" && claims.TabID != tabID {
		return nil, domain.ErrTabMismatch
	}

	user, err := uc.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.IsBlocked {
		return nil, domain.ErrUserBlocked
	}

	tokens, err := uc.issueTokens(user, tabID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{User: *toUserResponse(user), Tokens: *tokens}, nil
}

// ApplyAsStylist registra una postulación pública: User con rol STYLIST en
// estado APPLIED más su perfil borrador INACTIVE, creados en una sola
// transacción. No se envía OTP; queda en revisión humana.
func (uc *AuthUseCase) ApplyAsStylist(ctx context.Context, in dto.ApplyAsStylistRequest) (*dto.SignupResponse, error) {
	email := normalizeEmail(in.Email)
	phone := strings.TrimSpace(in.Phone)
	specialization := strings.TrimSpace(in.Specialization)

	if email == "" && phone == "" {
		return nil, domain.ErrEmailOrPhoneRequired
	}
	if specialization == "" || in.Experience <= 0 {
		return nil, domain.ErrInvalidInput
	}

	if email != "" {
		existing, err := uc.users.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailExists
		}
	}
	if phone != "" {
		existing, err := uc.users.FindByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrPhoneExists
		}
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		if email != "" {
			name = strings.SplitN(email, "@", 2)[0]
		} else {
			name = "Stylist"
		}
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		AuthProvider: entity.ProviderLocal,
		Role:         entity.RoleStylist,
		IsActive:     false,
		Status:       entity.UserStatusApplied,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.tx.Run(ctx, func(users repository.UserRepository, stylists repository.StylistRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return stylists.CreateDraft(ctx, &entity.Stylist{
			ID:              uuid.New().String(),
			UserID:          user.ID,
			Specialization:  specialization,
			Experience:      in.Experience,
			Status:          entity.StylistStatusInactive,
			AllowChat:       true,
			EarningsBalance: decimal.Zero,
			PendingPayout:   decimal.Zero,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, "stylist.applied", user.ID, map[string]string{
		"specialization": specialization,
	})
	return &dto.SignupResponse{
		Message: "postulación enviada; el administrador revisará y enviará la invitación",
		UserID:  user.ID,
	}, nil
}

// ForgotPassword emite un OTP de recuperación al email registrado.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.sendEmailOtp(ctx, PurposeReset, email, uc.ttl.Reset); err != nil {
		return err
	}
	uc.audit.Record(ctx, "user.reset_requested", user.ID, map[string]string{"email": email})
	return nil
}

// ResendResetOtp reemite el OTP de recuperación.
func (uc *AuthUseCase) ResendResetOtp(ctx context.Context, email string) error {
	return uc.ForgotPassword(ctx, email)
}

// VerifyResetOtp consume el OTP de recuperación. Es una llamada separada del
// reset para que el front valide el código antes de pedir la contraseña nueva.
func (uc *AuthUseCase) VerifyResetOtp(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)
	if err := uc.otp.Verify(ctx, PurposeReset, ChannelEmail, email, code); err != nil {
		return domain.ErrResetOtpInvalid
	}
	return nil
}

// ResetPassword re-hashea y sobreescribe la contraseña.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, email, newPassword string) error {
	email = normalizeEmail(email)
	hash, err := secure.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user, err := uc.users.UpdatePassword(ctx, email, hash)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	uc.audit.Record(ctx, "user.password_reset", user.ID, map[string]string{"email": email})
	return nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) issueTokens(user *entity.User, tabID string) (*dto.TokenPair, error) {
	access, err := jwt.Generate(uc.tokens.AccessSecret, uc.tokens.Issuer, user.ID, user.Role, tabID, uc.tokens.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(uc.tokens.RefreshSecret, uc.tokens.Issuer, user.ID, user.Role, tabID, uc.tokens.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (uc *AuthUseCase) sendEmailOtp(ctx context.Context, purpose, email string, ttl time.Duration) error {
	code, err := uc.otp.Generate(ctx, purpose, ChannelEmail, email, ttl)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("%s - Código de verificación", formatPurpose(purpose))
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif;">
			<p>Tu código de verificación es:</p>
			<h2>%s</h2>
			<p>Vence en %d minutos.</p>
		</div>`, code, int(ttl.Minutes()))
	return uc.email.Send(email, subject, body)
}

func (uc *AuthUseCase) sendSmsOtp(ctx context.Context, purpose, phone string, ttl time.Duration) error {
	code, err := uc.otp.Generate(ctx, purpose, ChannelSMS, phone, ttl)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("%s: tu código es %s (vence en %d min)", formatPurpose(purpose), code, int(ttl.Minutes()))
	return uc.sms.Send(ctx, phone, msg)
}

// formatPurpose humaniza el propósito para asuntos de correo ("signup" -> "Signup").
func formatPurpose(purpose string) string {
	p := strings.ReplaceAll(purpose, "_", " ")
	return cases.Title(language.Spanish).String(p)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		EmailVerified:  u.EmailVerified,
		Phone:          u.Phone,
		PhoneVerified:  u.PhoneVerified,
		Role:           u.Role,
		IsActive:       u.IsActive,
		IsBlocked:      u.IsBlocked,
		Status:         u.Status,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

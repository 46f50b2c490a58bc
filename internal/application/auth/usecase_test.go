package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salon-api/internal/application/auth"
	"github.com/jhoicas/salon-api/internal/application/dto"
	"github.com/jhoicas/salon-api/internal/domain"
	"github.com/jhoicas/salon-api/internal/domain/entity"
	"github.com/jhoicas/salon-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/salon-api/pkg/jwt"
	"github.com/jhoicas/salon-api/pkg/secure"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byID map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, e := range r.byID {
		if u.Email != "" && e.Email == u.Email {
			return domain.ErrEmailExists
		}
		if u.Phone != "" && e.Phone == u.Phone {
			return domain.ErrPhoneExists
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email != "" && u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Phone != "" && u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmailOrPhone(ctx context.Context, identifier string) (*entity.User, error) {
	if u, _ := r.FindByEmail(ctx, identifier); u != nil {
		return u, nil
	}
	return r.FindByPhone(ctx, identifier)
}

func (r *memUserRepo) MarkEmailVerified(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			u.EmailVerified = true
			u.IsActive = true
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) MarkPhoneVerified(_ context.Context, phone string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Phone == phone {
			u.PhoneVerified = true
			u.IsActive = true
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, email, hash string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			u.PasswordHash = hash
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) SetActive(_ context.Context, id string, active bool) error {
	if u, ok := r.byID[id]; ok {
		u.IsActive = active
	}
	return nil
}

func (r *memUserRepo) SetStatus(_ context.Context, id, status string) error {
	if u, ok := r.byID[id]; ok {
		u.Status = status
	}
	return nil
}

func (r *memUserRepo) SetBlocked(_ context.Context, id string, blocked bool) error {
	if u, ok := r.byID[id]; ok {
		u.IsBlocked = blocked
	}
	return nil
}

func (r *memUserRepo) ApplyInviteAcceptance(_ context.Context, userID string, data repository.UpdateInvitedStylist) (bool, error) {
	u, ok := r.byID[userID]
	if !ok {
		return false, nil
	}
	u.Name = data.Name
	u.Phone = data.Phone
	u.PhoneVerified = data.PhoneVerified
	u.PasswordHash = data.PasswordHash
	u.Status = entity.UserStatusAccepted
	u.IsActive = false
	return true, nil
}

func (r *memUserRepo) List(_ context.Context, f repository.UserFilter) ([]*entity.User, int, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Status != "" && u.Status != f.Status {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, len(out), nil
}

type memStylistRepo struct {
	byUserID map[string]*entity.Stylist
}

func newMemStylistRepo() *memStylistRepo {
	return &memStylistRepo{byUserID: map[string]*entity.Stylist{}}
}

func (r *memStylistRepo) CreateDraft(_ context.Context, s *entity.Stylist) error {
	if _, ok := r.byUserID[s.UserID]; ok {
		return domain.ErrDuplicate
	}
	cp := *s
	r.byUserID[s.UserID] = &cp
	return nil
}

func (r *memStylistRepo) FindByUserID(_ context.Context, userID string) (*entity.Stylist, error) {
	if s, ok := r.byUserID[userID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memStylistRepo) ExistsByUserID(_ context.Context, userID string) (bool, error) {
	_, ok := r.byUserID[userID]
	return ok, nil
}

func (r *memStylistRepo) ActivateByUserID(_ context.Context, userID string) error {
	if s, ok := r.byUserID[userID]; ok {
		s.Status = entity.StylistStatusActive
	}
	return nil
}

func (r *memStylistRepo) DeactivateByUserID(_ context.Context, userID string) error {
	if s, ok := r.byUserID[userID]; ok {
		s.Status = entity.StylistStatusInactive
	}
	return nil
}

func (r *memStylistRepo) ListAll(_ context.Context) ([]*repository.StylistListItem, error) {
	return nil, nil
}

// memOtpStore reproduce la semántica de Redis: sobrescritura en Generate y
// consumo atómico en Verify.
type memOtpStore struct {
	codes map[string]string
	last  string
}

func newMemOtpStore() *memOtpStore {
	return &memOtpStore{codes: map[string]string{}}
}

func (s *memOtpStore) key(purpose, channel, identifier string) string {
	return purpose + ":" + channel + ":" + identifier
}

func (s *memOtpStore) Generate(_ context.Context, purpose, channel, identifier string, _ time.Duration) (string, error) {
	code, err := secure.RandomDigits(6)
	if err != nil {
		return "", err
	}
	s.codes[s.key(purpose, channel, identifier)] = code
	s.last = code
	return code, nil
}

func (s *memOtpStore) Verify(_ context.Context, purpose, channel, identifier, code string) error {
	k := s.key(purpose, channel, identifier)
	stored, ok := s.codes[k]
	if !ok || stored != code {
		if purpose == auth.PurposeReset {
			return domain.ErrResetOtpInvalid
		}
		return domain.ErrOtpInvalid
	}
	delete(s.codes, k)
	return nil
}

type recordingEmail struct {
	to      []string
	subject []string
}

func (e *recordingEmail) Send(to, subject, _ string) error {
	e.to = append(e.to, to)
	e.subject = append(e.subject, subject)
	return nil
}

type recordingSMS struct {
	to []string
}

func (s *recordingSMS) Send(_ context.Context, to, _ string) error {
	s.to = append(s.to, to)
	return nil
}

type fakeGoogle struct {
	identity *auth.GoogleIdentity
	err      error
}

func (g *fakeGoogle) Verify(_ context.Context, _ string) (*auth.GoogleIdentity, error) {
	return g.identity, g.err
}

type noopAudit struct{}

func (noopAudit) Record(context.Context, string, string, map[string]string) {}

type fakeTx struct {
	users    *memUserRepo
	stylists *memStylistRepo
}

func (t *fakeTx) Run(ctx context.Context, fn func(repository.UserRepository, repository.StylistRepository) error) error {
	return fn(t.users, t.stylists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso
// ──────────────────────────────────────────────────────────────────────────────

type authFixture struct {
	uc       *auth.AuthUseCase
	users    *memUserRepo
	stylists *memStylistRepo
	otp      *memOtpStore
	email    *recordingEmail
	sms      *recordingSMS
	google   *fakeGoogle
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:    newMemUserRepo(),
		stylists: newMemStylistRepo(),
		otp:      newMemOtpStore(),
		email:    &recordingEmail{},
		sms:      &recordingSMS{},
		google:   &fakeGoogle{},
	}
	f.uc = auth.NewAuthUseCase(
		f.users, f.stylists, f.otp, f.email, f.sms, f.google, noopAudit{},
		&fakeTx{users: f.users, stylists: f.stylists},
		auth.TokenConfig{
			AccessSecret:  "access-secret-test",
			RefreshSecret: "refresh-secret-test",
			AccessTTL:     15 * time.Minute,
			RefreshTTL:    7 * 24 * time.Hour,
			Issuer:        "salon-api-test",
		},
		auth.OtpTTL{Signup: 5 * time.Minute, Reset: 10 * time.Minute},
	)
	return f
}

func (f *authFixture) signupEmail(t *testing.T, email string) string {
	t.Helper()
	out, err := f.uc.Signup(context.Background(), dto.SignupRequest{
		Name:     "Ana",
		Email:    email,
		Password: "secreta123",
	})
	require.NoError(t, err)
	return out.UserID
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup y verificación por OTP
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_SinCanalFalla(t *testing.T) {
	f := newAuthFixture()
	_, err := f.uc.Signup(context.Background(), dto.SignupRequest{Name: "Ana", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrEmailOrPhoneRequired)
}

func TestSignup_EmailTieneprioridadSobreTelefono(t *testing.T) {
	f := newAuthFixture()
	_, err := f.uc.Signup(context.Background(), dto.SignupRequest{
		Name: "Ana", Email: "ana@example.com", Phone: "+573001112233", Password: "secreta123",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"ana@example.com"}, f.email.to, "con ambos canales el OTP va por email")
	assert.Empty(t, f.sms.to, "no debe enviarse SMS cuando hay email")
}

func TestSignup_CuentaNaceInactiva(t *testing.T) {
	f := newAuthFixture()
	id := f.signupEmail(t, "ana@example.com")

	u, err := f.users.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.False(t, u.IsActive, "la cuenta no es usable hasta verificar el OTP")
	assert.Equal(t, entity.UserStatusActive, u.Status)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.NotEqual(t, "secreta123", u.PasswordHash)
}

func TestSignup_EmailDuplicadoFalla(t *testing.T) {
	f := newAuthFixture()
	f.signupEmail(t, "ana@example.com")

	_, err := f.uc.Signup(context.Background(), dto.SignupRequest{
		Name: "Otra", Email: "ana@example.com", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestVerifyOtp_ActivaLaCuenta(t *testing.T) {
	f := newAuthFixture()
	id := f.signupEmail(t, "ana@example.com")
	code := f.otp.last

	require.NoError(t, f.uc.VerifyOtp(context.Background(), "ana@example.com", code))

	u, _ := f.users.FindByID(context.Background(), id)
	assert.True(t, u.IsActive)
	assert.True(t, u.EmailVerified)
}

func TestVerifyOtp_EsDeUnSoloUso(t *testing.T) {
	f := newAuthFixture()
	f.signupEmail(t, "ana@example.com")
	code := f.otp.last

	require.NoError(t, f.uc.VerifyOtp(context.Background(), "ana@example.com", code))
	err := f.uc.VerifyOtp(context.Background(), "ana@example.com", code)
	assert.ErrorIs(t, err, domain.ErrOtpInvalid, "el mismo código no puede consumirse dos veces")
}

func TestVerifyOtp_CodigoIncorrectoNoConsume(t *testing.T) {
	f := newAuthFixture()
	f.signupEmail(t, "ana@example.com")
	code := f.otp.last

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	assert.ErrorIs(t, f.uc.VerifyOtp(context.Background(), "ana@example.com", wrong), domain.ErrOtpInvalid)
	// el código correcto sigue vivo
	assert.NoError(t, f.uc.VerifyOtp(context.Background(), "ana@example.com", code))
}

func TestResendOtp_InvalidaElAnterior(t *testing.T) {
	f := newAuthFixture()
	f.signupEmail(t, "ana@example.com")
	first := f.otp.last

	require.NoError(t, f.uc.ResendEmailOtp(context.Background(), "ana@example.com"))
	second := f.otp.last

	if first != second {
		assert.ErrorIs(t, f.uc.VerifyOtp(context.Background(), "ana@example.com", first), domain.ErrOtpInvalid)
	}
	assert.NoError(t, f.uc.VerifyOtp(context.Background(), "ana@example.com", second))
}

func TestSignupSms_VerificaPorTelefono(t *testing.T) {
	f := newAuthFixture()
	_, err := f.uc.Signup(context.Background(), dto.SignupRequest{
		Name: "Ana", Phone: "+573001112233", Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"+573001112233"}, f.sms.to)

	require.NoError(t, f.uc.VerifySignupSmsOtp(context.Background(), "+573001112233", f.otp.last))
	u, _ := f.users.FindByPhone(context.Background(), "+573001112233")
	assert.True(t, u.IsActive)
	assert.True(t, u.PhoneVerified)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func (f *authFixture) activeUser(t *testing.T, email, password string) *entity.User {
	t.Helper()
	f.signupEmail(t, email)
	require.NoError(t, f.uc.VerifyOtp(context.Background(), email, f.otp.last))
	u, err := f.users.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

func TestLogin_Exitoso(t *testing.T) {
	f := newAuthFixture()
	f.activeUser(t, "ana@example.com", "secreta123")

	out, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "secreta123", Role: entity.RoleUser,
	}, "tab-1")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Tokens.AccessToken)
	assert.NotEmpty(t, out.Tokens.RefreshToken)
	assert.NotEqual(t, out.Tokens.AccessToken, out.Tokens.RefreshToken)

	claims, err := pkgjwt.Parse("access-secret-test", out.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "tab-1", claims.TabID, "el access token queda atado a la pestaña")

	// el refresh no valida con el secret de access
	_, err = pkgjwt.Parse("access-secret-test", out.Tokens.RefreshToken)
	assert.Error(t, err)
}

// El mensaje de error es el mismo exista o no la cuenta: el login no revela
// qué emails están registrados.
func TestLogin_NoFiltraExistenciaDeCuentas(t *testing.T) {
	f := newAuthFixture()
	f.activeUser(t, "ana@example.com", "secreta123")

	_, errNoUser := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "nadie@example.com", Password: "secreta123", Role: entity.RoleUser,
	}, "")
	_, errBadPass := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "incorrecta", Role: entity.RoleUser,
	}, "")

	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errNoUser.Error(), errBadPass.Error())
}

func TestLogin_RolDistintoFalla(t *testing.T) {
	f := newAuthFixture()
	f.activeUser(t, "ana@example.com", "secreta123")

	_, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "secreta123", Role: entity.RoleAdmin,
	}, "")
	assert.ErrorIs(t, err, domain.ErrRoleMismatch)
}

func TestLogin_SinVerificarFalla(t *testing.T) {
	f := newAuthFixture()
	f.signupEmail(t, "ana@example.com") // sin verificar OTP

	_, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "secreta123", Role: entity.RoleUser,
	}, "")
	assert.ErrorIs(t, err, domain.ErrUserNotVerified)
}

func TestLogin_BloqueadoFalla(t *testing.T) {
	f := newAuthFixture()
	u := f.activeUser(t, "ana@example.com", "secreta123")
	require.NoError(t, f.users.SetBlocked(context.Background(), u.ID, true))

	_, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "secreta123", Role: entity.RoleUser,
	}, "")
	assert.ErrorIs(t, err, domain.ErrUserBlocked)
}

func TestLogin_CuentaGoogleRedirige(t *testing.T) {
	f := newAuthFixture()
	f.google.identity = &auth.GoogleIdentity{Email: "g@example.com", Subject: "google-sub-1", Name: "G"}
	_, err := f.uc.GoogleLogin(context.Background(), "id-token", "tab-1")
	require.NoError(t, err)
	// una cuenta de Google no entra con contraseña; el error redirige al flujo correcto
	_, err = f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "g@example.com", Password: "da igual", Role: entity.RoleUser,
	}, "")
	assert.ErrorIs(t, err, domain.ErrUseGoogleLogin)
}

// ──────────────────────────────────────────────────────────────────────────────
// Google login
// ──────────────────────────────────────────────────────────────────────────────

func TestGoogleLogin_AutoProvisionaUsuario(t *testing.T) {
	f := newAuthFixture()
	f.google.identity = &auth.GoogleIdentity{Email: "g@example.com", Subject: "google-sub-1", Name: "Gabriela"}

	out, err := f.uc.GoogleLogin(context.Background(), "id-token", "tab-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.True(t, out.User.IsActive, "la cuenta de Google nace usable")
	assert.True(t, out.User.EmailVerified, "Google ya verificó el email")

	u, _ := f.users.FindByEmail(context.Background(), "g@example.com")
	require.NotNil(t, u)
	assert.Equal(t, entity.ProviderGoogle, u.AuthProvider)
	assert.Equal(t, "google-sub-1", u.GoogleID)

	// segunda vez: la misma cuenta, no una nueva
	out2, err := f.uc.GoogleLogin(context.Background(), "id-token", "tab-2")
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, out2.User.ID)
}

func TestGoogleLogin_TokenInvalido(t *testing.T) {
	f := newAuthFixture()
	f.google.err = domain.ErrInvalidGoogleToken

	_, err := f.uc.GoogleLogin(context.Background(), "basura", "")
	assert.ErrorIs(t, err, domain.ErrInvalidGoogleToken)
}

func TestGoogleLogin_SoloParaClientes(t *testing.T) {
	f := newAuthFixture()
	// un estilista con el mismo email ya existe
	require.NoError(t, f.users.Create(context.Background(), &entity.User{
		ID: "sty-1", Name: "S", Email: "s@example.com", Role: entity.RoleStylist,
		AuthProvider: entity.ProviderLocal, Status: entity.UserStatusActive, IsActive: true,
	}))
	f.google.identity = &auth.GoogleIdentity{Email: "s@example.com", Subject: "sub-s"}

	_, err := f.uc.GoogleLogin(context.Background(), "id-token", "")
	assert.ErrorIs(t, err, domain.ErrGoogleOnlyUsers)
}

// ──────────────────────────────────────────────────────────────────────────────
// Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_EmiteParNuevo(t *testing.T) {
	f := newAuthFixture()
	f.activeUser(t, "ana@example.com", "secreta123")
	out, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "secreta123", Role: entity.RoleUser,
	}, "tab-1")
	require.NoError(t, err)

	renewed, err := f.uc.Refresh(context.Background(), out.Tokens.RefreshToken, "tab-1")
	require.NoError(t, err)
	assert.NotEmpty(t, renewed.Tokens.AccessToken)
	assert.Equal(t, out.User.ID, renewed.User.ID)
}

func TestRefresh_PestanaDistintaFalla(t *testing.T) {
	f := newAuthFixture()
	f.activeUser(t, "ana@example.com", "secreta123")
	out, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "secreta123", Role: entity.RoleUser,
	}, "tab-1")
	require.NoError(t, err)

	_, err = f.uc.Refresh(context.Background(), out.Tokens.RefreshToken, "tab-2")
	assert.ErrorIs(t, err, domain.ErrTabMismatch)
}

// Un usuario bloqueado después de emitido el refresh no puede renovarlo.
func TestRefresh_BloqueadoDespuesDeEmitirFalla(t *testing.T) {
	f := newAuthFixture()
	u := f.activeUser(t, "ana@example.com", "secreta123")
	out, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "secreta123", Role: entity.RoleUser,
	}, "tab-1")
	require.NoError(t, err)

	require.NoError(t, f.users.SetBlocked(context.Background(), u.ID, true))

	_, err = f.uc.Refresh(context.Background(), out.Tokens.RefreshToken, "tab-1")
	assert.ErrorIs(t, err, domain.ErrUserBlocked)
}

func TestRefresh_AccessTokenNoSirveComoRefresh(t *testing.T) {
	f := newAuthFixture()
	f.activeUser(t, "ana@example.com", "secreta123")
	out, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "secreta123", Role: entity.RoleUser,
	}, "tab-1")
	require.NoError(t, err)

	_, err = f.uc.Refresh(context.Background(), out.Tokens.AccessToken, "tab-1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_FlujoCompleto(t *testing.T) {
	f := newAuthFixture()
	f.activeUser(t, "ana@example.com", "secreta123")

	require.NoError(t, f.uc.ForgotPassword(context.Background(), "ana@example.com"))
	code := f.otp.last

	require.NoError(t, f.uc.VerifyResetOtp(context.Background(), "ana@example.com", code))
	require.NoError(t, f.uc.ResetPassword(context.Background(), "ana@example.com", "nueva456"))

	_, err := f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "secreta123", Role: entity.RoleUser,
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "la contraseña vieja ya no sirve")

	_, err = f.uc.Login(context.Background(), dto.LoginRequest{
		Identifier: "ana@example.com", Password: "nueva456", Role: entity.RoleUser,
	}, "")
	assert.NoError(t, err)
}

func TestVerifyResetOtp_EsDeUnSoloUso(t *testing.T) {
	f := newAuthFixture()
	f.activeUser(t, "ana@example.com", "secreta123")
	require.NoError(t, f.uc.ForgotPassword(context.Background(), "ana@example.com"))
	code := f.otp.last

	require.NoError(t, f.uc.VerifyResetOtp(context.Background(), "ana@example.com", code))
	assert.ErrorIs(t, f.uc.VerifyResetOtp(context.Background(), "ana@example.com", code), domain.ErrResetOtpInvalid)
}

// Los OTP de signup y de recuperación nunca se cruzan aunque compartan email.
func TestOtp_PropositosNoColisionan(t *testing.T) {
	f := newAuthFixture()
	f.signupEmail(t, "ana@example.com")
	signupCode := f.otp.last

	require.NoError(t, f.uc.ForgotPassword(context.Background(), "ana@example.com"))
	resetCode := f.otp.last

	if signupCode != resetCode {
		assert.ErrorIs(t, f.uc.VerifyResetOtp(context.Background(), "ana@example.com", signupCode), domain.ErrResetOtpInvalid)
	}
	assert.NoError(t, f.uc.VerifyOtp(context.Background(), "ana@example.com", signupCode))
	assert.NoError(t, f.uc.VerifyResetOtp(context.Background(), "ana@example.com", resetCode))
}

func TestForgotPassword_EmailDesconocidoFalla(t *testing.T) {
	f := newAuthFixture()
	assert.ErrorIs(t, f.uc.ForgotPassword(context.Background(), "nadie@example.com"), domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Postulación de estilistas
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyAsStylist_CreaUsuarioYPerfilJuntos(t *testing.T) {
	f := newAuthFixture()
	out, err := f.uc.ApplyAsStylist(context.Background(), dto.ApplyAsStylistRequest{
		Email:          "sty@example.com",
		Specialization: "Colorimetría",
		Experience:     4,
	})
	require.NoError(t, err)

	u, _ := f.users.FindByID(context.Background(), out.UserID)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleStylist, u.Role)
	assert.Equal(t, entity.UserStatusApplied, u.Status)
	assert.False(t, u.IsActive)
	assert.Equal(t, "sty", u.Name, "sin nombre explícito se usa la parte local del email")

	s, _ := f.stylists.FindByUserID(context.Background(), out.UserID)
	require.NotNil(t, s)
	assert.Equal(t, entity.StylistStatusInactive, s.Status)
	assert.Equal(t, "Colorimetría", s.Specialization)
	assert.Equal(t, 4, s.Experience)

	assert.Empty(t, f.email.to, "la postulación no envía OTP ni correos")
	assert.Empty(t, f.sms.to)
}

func TestApplyAsStylist_ExperienciaInvalida(t *testing.T) {
	f := newAuthFixture()
	_, err := f.uc.ApplyAsStylist(context.Background(), dto.ApplyAsStylistRequest{
		Email:          "sty@example.com",
		Specialization: "Cortes",
		Experience:     0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

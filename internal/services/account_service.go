package services

import (
	"log"
	"strings"
	"time"

	"sellora/internal/apperrors"
	"sellora/internal/authz"
	"sellora/internal/models"
	"sellora/internal/repositories"
	"sellora/internal/utils"
)

// AccountService — оркестратор регистрации, логина и восстановления пароля.
type AccountService interface {
	Register(email, firstName, lastName, password string) error
	VerifyEmail(email, code string) error
	Login(email, password string) (string, error)
	RequestRecovery(email string) error
	ConfirmCode(email, code string) (bool, error)
	ResetPassword(email, newPassword, confirmPassword string) error
	Deactivate(userID int) error
	ListActive() ([]*models.Account, error)
}

type accountService struct {
	accounts      repositories.AccountRepository
	roles         repositories.RoleRepository
	verifications repositories.VerificationRepository
	emails        EmailService
	auth          AuthService
	tokens        TokenService

	registrationTTL time.Duration
	recoveryTTL     time.Duration
}

func NewAccountService(
	accounts repositories.AccountRepository,
	roles repositories.RoleRepository,
	verifications repositories.VerificationRepository,
	emails EmailService,
	auth AuthService,
	tokens TokenService,
	registrationTTL, recoveryTTL time.Duration,
) AccountService {
	return &accountService{
		accounts:        accounts,
		roles:           roles,
		verifications:   verifications,
		emails:          emails,
		auth:            auth,
		tokens:          tokens,
		registrationTTL: registrationTTL,
		recoveryTTL:     recoveryTTL,
	}
}

// issueCode — выдать код, записать в журнал и отправить письмо.
// Общий шаг регистрации и восстановления: журнал у обоих потоков один.
func (s *accountService) issueCode(email string, ttl time.Duration, send func(email, code string, ttlMinutes int) error) error {
	code, err := utils.NewVerificationCode()
	if err != nil {
		return apperrors.Persistence("Failed to generate verification code.", err)
	}
	if _, err := s.verifications.Create(email, code, time.Now().Add(ttl)); err != nil {
		return apperrors.Persistence("Failed to record verification code.", err)
	}
	if err := send(email, code, int(ttl.Minutes())); err != nil {
		// код уже записан; откат не делаем — регистрация/восстановление
		// целиком отчитываются как неуспех
		log.Printf("[account][code] send email failed for %q: err=%v", email, err)
		return apperrors.EmailSending(err)
	}
	return nil
}

func (s *accountService) Register(email, firstName, lastName, password string) error {
	email = strings.TrimSpace(email)

	existing, err := s.accounts.GetByEmail(email)
	if err != nil {
		log.Printf("[account][register] lookup failed for %q: err=%v", email, err)
		return apperrors.Persistence("Registration failed.", err)
	}
	if existing != nil {
		log.Printf("[account][register] attempt with existing email=%q", email)
		return apperrors.EmailAlreadyExists(email)
	}

	hash, err := s.auth.HashPassword(strings.TrimSpace(password))
	if err != nil {
		return apperrors.Persistence("Registration failed.", err)
	}

	account := &models.Account{
		FirstName:    strings.ToLower(strings.TrimSpace(firstName)),
		LastName:     strings.ToLower(strings.TrimSpace(lastName)),
		Email:        email,
		PasswordHash: hash,
		IsActive:     false,
	}
	if err := s.accounts.Create(account); err != nil {
		// UNIQUE-ограничение — последняя инстанция по гонке с pre-check выше
		if repositories.IsUniqueViolation(err) {
			log.Printf("[account][register] unique violation for email=%q", email)
			return apperrors.EmailAlreadyExists(email)
		}
		log.Printf("[account][register] create failed for %q: err=%v", email, err)
		return apperrors.Persistence("Registration failed.", err)
	}

	if err := s.roles.Assign(account.ID, authz.DefaultRoleID); err != nil {
		log.Printf("[account][register] assign role failed for userID=%d: err=%v", account.ID, err)
		return apperrors.Persistence("Registration failed.", err)
	}

	if err := s.issueCode(email, s.registrationTTL, s.emails.SendVerificationEmail); err != nil {
		return err
	}

	log.Printf("[account][register] new user registered email=%q userID=%d", email, account.ID)
	return nil
}

func (s *accountService) VerifyEmail(email, code string) error {
	ok, err := s.verifications.RedeemAndActivate(email, code)
	if err != nil {
		log.Printf("[account][verify] redeem failed for %q: err=%v", email, err)
		return apperrors.Persistence("Email verification failed.", err)
	}
	if !ok {
		log.Printf("[account][verify] invalid verification code attempt for %q", email)
		return apperrors.VerificationCodeInvalid("")
	}
	log.Printf("[account][verify] email verified for %q", email)
	return nil
}

// Login — единый ответ InvalidCredentials для "нет аккаунта", "неактивен"
// и "пароль не подошёл": существование аккаунта не должно быть различимо.
func (s *accountService) Login(email, password string) (string, error) {
	account, err := s.accounts.GetActiveByEmail(strings.TrimSpace(email))
	if err != nil {
		log.Printf("[account][login] lookup failed for %q: err=%v", email, err)
		return "", apperrors.Persistence("Login failed.", err)
	}
	if account == nil {
		log.Printf("[account][login] attempt for unknown or inactive email=%q", email)
		return "", apperrors.InvalidCredentials()
	}

	if !s.auth.VerifyPassword(account.PasswordHash, strings.TrimSpace(password)) {
		log.Printf("[account][login] failed attempt for userID=%d", account.ID)
		return "", apperrors.InvalidCredentials()
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return "", err
	}
	log.Printf("[account][login] success userID=%d", account.ID)
	return token, nil
}

// RequestRecovery — в отличие от логина отвечает UserNotFound, если
// активного аккаунта нет; асимметрия сохранена сознательно.
func (s *accountService) RequestRecovery(email string) error {
	email = strings.TrimSpace(email)

	account, err := s.accounts.GetActiveByEmail(email)
	if err != nil {
		log.Printf("[account][recovery] lookup failed for %q: err=%v", email, err)
		return apperrors.Persistence("Password recovery failed.", err)
	}
	if account == nil {
		return apperrors.UserNotFound("")
	}

	if err := s.issueCode(email, s.recoveryTTL, s.emails.SendRecoveryEmail); err != nil {
		return err
	}
	log.Printf("[account][recovery] recovery code sent to %q", email)
	return nil
}

func (s *accountService) ConfirmCode(email, code string) (bool, error) {
	ok, err := s.verifications.Redeem(strings.TrimSpace(email), strings.TrimSpace(code))
	if err != nil {
		log.Printf("[account][recovery] confirm code failed for %q: err=%v", email, err)
		return false, apperrors.Persistence("Code confirmation failed.", err)
	}
	return ok, nil
}

func (s *accountService) ResetPassword(email, newPassword, confirmPassword string) error {
	email = strings.TrimSpace(email)

	verification, err := s.verifications.LatestVerified(email)
	if err != nil {
		log.Printf("[account][reset] ledger lookup failed for %q: err=%v", email, err)
		return apperrors.Persistence("Password reset failed.", err)
	}
	if verification == nil {
		log.Printf("[account][reset] attempt without confirmed code for %q", email)
		return apperrors.VerificationCodeInvalid("Password reset not verified.")
	}

	if newPassword != confirmPassword {
		log.Printf("[account][reset] mismatched passwords for %q", email)
		return apperrors.PasswordMismatch()
	}

	account, err := s.accounts.GetActiveByEmail(email)
	if err != nil {
		return apperrors.Persistence("Password reset failed.", err)
	}
	if account == nil {
		return apperrors.UserNotFound("")
	}

	hash, err := s.auth.HashPassword(strings.TrimSpace(newPassword))
	if err != nil {
		return apperrors.Persistence("Password reset failed.", err)
	}
	if err := s.accounts.UpdatePassword(account.ID, hash); err != nil {
		log.Printf("[account][reset] update password failed for userID=%d: err=%v", account.ID, err)
		return apperrors.Persistence("Password reset failed.", err)
	}
	log.Printf("[account][reset] password changed for userID=%d", account.ID)
	return nil
}

func (s *accountService) Deactivate(userID int) error {
	ok, err := s.accounts.Deactivate(userID)
	if err != nil {
		log.Printf("[account][deactivate] failed for userID=%d: err=%v", userID, err)
		return apperrors.Persistence("Deactivation failed.", err)
	}
	if !ok {
		return apperrors.UserNotFound("User not found or already deactivated.")
	}
	log.Printf("[account][deactivate] userID=%d deactivated", userID)
	return nil
}

func (s *accountService) ListActive() ([]*models.Account, error) {
	return s.accounts.ListActive()
}

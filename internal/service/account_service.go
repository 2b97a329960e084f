package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"food-delivery/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const RegistrationSucceeded = "registration completed successfully"

var passwordPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// AccountService registers and authenticates accounts. Passwords are stored
// and compared in plain text, which is only acceptable while the store is a
// local single-user file.
type AccountService struct {
	repo     AccountRepository
	validate *validator.Validate
}

func NewAccountService(repo AccountRepository) *AccountService {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("label")
	})
	return &AccountService{repo: repo, validate: validate}
}

func (s *AccountService) Register(ctx context.Context, reg domain.Registration) (string, error) {
	if err := s.checkRequired(reg); err != nil {
		return "", err
	}

	accounts, err := s.repo.LoadAccounts(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, existing := range accounts {
		if existing.Login == reg.Login {
			return "", ErrLoginTaken
		}
	}
	if reg.Password != reg.RepeatPassword {
		return "", ErrPasswordMismatch
	}
	if !passwordPattern.MatchString(reg.Password) {
		return "", ErrPasswordCharset
	}

	accounts = append(accounts, reg.Account())
	if err := s.repo.SaveAccounts(ctx, accounts); err != nil {
		return "", fmt.Errorf("failed to save accounts: %w", err)
	}

	logrus.WithField("login", reg.Login).Info("account registered")
	return RegistrationSucceeded, nil
}

// Authenticate returns the account matching both login and password, or nil
// when there is none.
func (s *AccountService) Authenticate(ctx context.Context, login, password string) (*domain.Account, error) {
	accounts, err := s.repo.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	for _, account := range accounts {
		if account.Login == login && account.Password == password {
			account.Role = domain.ParseRole(string(account.Role))
			logrus.WithFields(logrus.Fields{"login": login, "role": account.Role}).Info("login succeeded")
			return &account, nil
		}
	}

	logrus.WithField("login", login).Warn("login failed")
	return nil, nil
}

func (s *AccountService) checkRequired(reg domain.Registration) error {
	trimmed := domain.Registration{
		FirstName:      strings.TrimSpace(reg.FirstName),
		LastName:       strings.TrimSpace(reg.LastName),
		BirthDate:      strings.TrimSpace(reg.BirthDate),
		Email:          strings.TrimSpace(reg.Email),
		Login:          strings.TrimSpace(reg.Login),
		Password:       strings.TrimSpace(reg.Password),
		RepeatPassword: strings.TrimSpace(reg.RepeatPassword),
		Address:        strings.TrimSpace(reg.Address),
	}

	err := s.validate.Struct(trimmed)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	labels := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		labels = append(labels, fe.Field())
	}
	return missingFields(labels)
}

var _ AccountServiceInterface = (*AccountService)(nil)

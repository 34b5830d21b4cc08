package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/internal/store"
	"github.com/MKhiriev/go-user-gateway/internal/utils"
	"github.com/MKhiriev/go-user-gateway/internal/validators"
	"github.com/MKhiriev/go-user-gateway/models"
)

// userService is the default [UserService]. Validation failures, including
// a taken email, are returned as [validators.ValidationErrors]; unknown IDs
// as [store.ErrNoUserWasFound].
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// hashPassword produces the stored form of a plain-text password.
	hashPassword func(password string) (string, error)

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		hashPassword:   utils.HashPassword,
		logger:         logger,
	}
}

func (s *userService) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	req = normalize(req)

	if err := s.validate(ctx, req, 0); err != nil {
		return models.User{}, err
	}

	hash, err := s.hashPassword(*req.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.Create").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Name:     *req.Name,
		Email:    *req.Email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, emailTaken()
		}
		log.Err(err).Str("func", "*userService.Create").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, id)
}

// Update loads the user first so that an unknown ID is reported before any
// validation error. A request without fields returns the user unchanged.
func (s *userService) Update(ctx context.Context, id int64, req models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	req = normalize(req)

	existing, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	fields := providedFields(req)
	if len(fields) == 0 {
		return existing, nil
	}

	if err = s.validate(ctx, req, id, fields...); err != nil {
		return models.User{}, err
	}

	update := models.UserUpdate{ID: id, Name: req.Name, Email: req.Email}
	if req.Password != nil {
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.Update").Msg("error hashing password")
			return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
		}
		update.Password = &hash
	}

	updated, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, emailTaken()
		}
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, err
		}
		log.Err(err).Str("func", "*userService.Update").Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// validate runs the field rules and, when the email itself is valid, the
// uniqueness check. exceptID is the user allowed to keep the email.
func (s *userService) validate(ctx context.Context, req models.UserRequest, exceptID int64, fields ...string) error {
	errs := validators.ValidationErrors{}

	if err := s.validator.Validate(ctx, req, fields...); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}

	checkEmail := len(fields) == 0
	for _, f := range fields {
		if f == validators.FieldEmail {
			checkEmail = true
		}
	}

	if checkEmail && req.Email != nil && len(errs[validators.FieldEmail]) == 0 {
		exists, err := s.userRepository.EmailExists(ctx, *req.Email, exceptID)
		if err != nil {
			return fmt.Errorf("error checking email uniqueness: %w", err)
		}
		if exists {
			errs.Add(validators.FieldEmail, validators.MessageEmailTaken)
		}
	}

	if errs.Any() {
		return errs
	}
	return nil
}

func emailTaken() validators.ValidationErrors {
	errs := validators.ValidationErrors{}
	errs.Add(validators.FieldEmail, validators.MessageEmailTaken)
	return errs
}

// normalize trims surrounding whitespace from name and email.
func normalize(req models.UserRequest) models.UserRequest {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		req.Email = &email
	}
	return req
}

func providedFields(req models.UserRequest) []string {
	var fields []string
	if req.Name != nil {
		fields = append(fields, validators.FieldName)
	}
	if req.Email != nil {
		fields = append(fields, validators.FieldEmail)
	}
	if req.Password != nil {
		fields = append(fields, validators.FieldPassword)
	}
	return fields
}

package service

import (
	"fmt"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/datlq-dev/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type AuthService interface {
	Register(req dto.RegisterRequestDTO) (*dto.AuthResponseDTO, error)
	Login(req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error)
	GetMe(userID uint) (*dto.MeResponseDTO, error)
}

type authService struct {
	userRepo     repository.UserRepository
	tokenService TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokenService TokenService) AuthService {
	return &authService{userRepo: userRepo, tokenService: tokenService}
}

func (s *authService) Register(req dto.RegisterRequestDTO) (*dto.AuthResponseDTO, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !repository.IsNotFound(err) {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: lookup failed")
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		log.Error().Err(err).Msg("Register: failed to hash password")
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	hashStr := string(hash)
	user := model.User{
		Email:    req.Email,
		Password: &hashStr,
		Name:     req.Name,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Register: failed to issue token")
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	log.Info().Uint("userID", user.ID).Msg("Register: user created")
	return &dto.AuthResponseDTO{
		Message: "User registered successfully",
		Token:   token,
		User:    userToDTO(&user),
	}, nil
}

func (s *authService) Login(req dto.LoginRequestDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Login: lookup failed")
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	// OAuth-only accounts have no password hash and cannot log in this way.
	if user.Password == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to issue token")
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &dto.AuthResponseDTO{
		Message: "Login successful",
		Token:   token,
		User:    userToDTO(user),
	}, nil
}

func (s *authService) GetMe(userID uint) (*dto.MeResponseDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		log.Error().Err(err).Uint("userID", userID).Msg("GetMe: lookup failed")
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &dto.MeResponseDTO{User: userToDTO(user)}, nil
}

func userToDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
	}
}

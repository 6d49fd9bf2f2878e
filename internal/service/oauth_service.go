package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/datlq-dev/quizhub/config"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/datlq-dev/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleUserInfo is the subset of Google's userinfo payload we consume.
type GoogleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleOAuthService drives the Google authorization-code flow and resolves
// the Google profile to a local user.
type GoogleOAuthService interface {
	AuthURL(state string) string
	HandleCallback(ctx context.Context, code string) (*model.User, error)
}

type googleOAuthService struct {
	oauthConfig *oauth2.Config
	userRepo    repository.UserRepository
}

func NewGoogleOAuthService(cfg *config.Config, userRepo repository.UserRepository) GoogleOAuthService {
	return &googleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.CallbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		userRepo: userRepo,
	}
}

func (s *googleOAuthService) AuthURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

func (s *googleOAuthService) HandleCallback(ctx context.Context, code string) (*model.User, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.resolveUser(info)
}

func (s *googleOAuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*GoogleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading userinfo response: %w", err)
	}
	var info GoogleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("parsing userinfo response: %w", err)
	}
	return &info, nil
}

// resolveUser maps a Google profile to a local account: by Google ID first,
// then by linking an existing email account, otherwise by creating a new user.
func (s *googleOAuthService) resolveUser(info *GoogleUserInfo) (*model.User, error) {
	user, err := s.userRepo.FindByGoogleID(info.ID)
	if err == nil {
		return user, nil
	}
	if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("looking up user by google id: %w", err)
	}

	user, err = s.userRepo.FindByEmail(info.Email)
	if err == nil {
		user.GoogleID = &info.ID
		if info.Picture != "" {
			user.ProfileImage = &info.Picture
		}
		if err := s.userRepo.Update(user); err != nil {
			return nil, fmt.Errorf("linking google account: %w", err)
		}
		log.Info().Uint("userID", user.ID).Msg("HandleCallback: linked Google account to existing user")
		return user, nil
	}
	if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}

	newUser := model.User{
		Email:    info.Email,
		Name:     info.Name,
		GoogleID: &info.ID,
	}
	if info.Picture != "" {
		newUser.ProfileImage = &info.Picture
	}
	if err := s.userRepo.Create(&newUser); err != nil {
		return nil, fmt.Errorf("creating user from google profile: %w", err)
	}
	log.Info().Uint("userID", newUser.ID).Msg("HandleCallback: created user from Google profile")
	return &newUser, nil
}

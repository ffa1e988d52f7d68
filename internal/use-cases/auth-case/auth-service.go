package auth_case

import (
	"context"
	"fmt"
	"regexp"
	"time"

	auth_dto "github.com/Xenn-00/kapazitaets-meister/internal/dtos/auth-dto"
	"github.com/Xenn-00/kapazitaets-meister/internal/entity"
	app_errors "github.com/Xenn-00/kapazitaets-meister/internal/errors"
	auth_repo "github.com/Xenn-00/kapazitaets-meister/internal/repo/auth-repo"
	"github.com/Xenn-00/kapazitaets-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthService struct {
	redis  *redis.Client
	paseto *utils.PasetoMaker
	repo   auth_repo.AuthRepoContract
}

func NewAuthService(db *pgxpool.Pool, redis *redis.Client, paseto *utils.PasetoMaker) AuthServiceContract {
	return &AuthService{
		repo:   auth_repo.NewAuthRepo(db),
		redis:  redis,
		paseto: paseto,
	}
}

// RegisterUser registriert einen neuen Benutzer.
func (s *AuthService) RegisterUser(ctx context.Context, req auth_dto.RegisterUserRequest) (*auth_dto.RegisterUserResponse, *app_errors.AppError) {
	// Überprüfen, ob der Benutzer bereits existiert oder nicht.
	filter := entity.UserCountFilter{
		Email:    &req.Email,
		Username: &req.Username,
	}

	count, err := s.repo.CountUsers(ctx, filter)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		log.Debug().Msg("Benutzer existiert bereits")
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "conflict", nil)
	}

	// Passwort hashen
	hashed, hashErr := utils.GenerateHash(req.Password)
	if hashErr != nil {
		log.Error().Err(hashErr).Msg("Fehler beim Hashen des Passworts")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", hashErr)
	}

	// Neuen Benutzer erstellen
	idUser, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der UUID v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	newUser := entity.UserEntity{
		ID:           idUser.String(),
		Email:        req.Email,
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hashed,
		IsActive:     true,
	}

	newUserID, err := s.repo.SaveUser(ctx, newUser)
	if err != nil {
		return nil, err
	}

	// Token erstellen
	sessionID, sessionErr := uuid.NewV7()
	if sessionErr != nil {
		log.Error().Err(sessionErr).Msg("Fehler beim Erzeugen der UUID v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", sessionErr)
	}
	token, pasetoErr := s.paseto.CreateToken(newUserID, newUser.Username, newUser.Email, sessionID.String(), true, 15*time.Minute)
	if pasetoErr != nil {
		log.Error().Err(pasetoErr).Msg("Fehler beim Erstellen der Paseto-Token")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", pasetoErr)
	}

	s.trackSession(ctx, sessionID.String(), newUserID, token, auth_dto.LoginMetadata{})

	return &auth_dto.RegisterUserResponse{
		UserID: newUserID,
		Token:  token,
	}, nil
}

// LoginUser authentifiziert einen Benutzer anhand von E-Mail oder Benutzername,
// validiert das Passwort, erzeugt ein Paseto-Token (TTL: 15 Minuten) und legt
// eine Sitzungsinformation in Redis ab.
func (s *AuthService) LoginUser(ctx context.Context, req auth_dto.LoginUserRequest, loginMeta auth_dto.LoginMetadata) (*auth_dto.LoginUserResponse, *app_errors.AppError) {
	// Anmelden per E-Mail oder Benutzername
	var user *entity.UserEntity
	var err *app_errors.AppError

	if emailRegex.MatchString(req.Identifier) {
		user, err = s.repo.FindByEmail(ctx, req.Identifier)
	} else {
		user, err = s.repo.FindByUsername(ctx, req.Identifier)
	}
	if err != nil {
		// Nicht verraten, ob das Konto existiert.
		log.Debug().Msgf("Benutzer nicht gefunden: %s", req.Identifier)
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", err.Err)
	}

	// Passwort überprüfen
	if !utils.CompareHash(user.PasswordHash, req.Password) {
		log.Debug().Msg("Passwortprüfung fehlgeschlagen")
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	if !user.IsActive {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.inactive", nil)
	}

	// SessionID erstellen
	sessionID, sessionErr := uuid.NewV7()
	if sessionErr != nil {
		log.Error().Err(sessionErr).Msg("Fehler beim Erzeugen der UUID v7")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", sessionErr)
	}

	// Token erstellen
	token, pasetoErr := s.paseto.CreateToken(user.ID, user.Username, user.Email, sessionID.String(), user.IsActive, 15*time.Minute)
	if pasetoErr != nil {
		log.Error().Err(pasetoErr).Msg("Fehler beim Erstellen der Paseto-Token")
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", pasetoErr)
	}

	s.trackSession(ctx, sessionID.String(), user.ID, token, loginMeta)

	return &auth_dto.LoginUserResponse{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// LogoutUser beendet die Sitzung und entfernt den Redis-Eintrag. Die
// Authentifizierungs-Middleware akzeptiert danach kein Token mit dieser
// Session-ID mehr.
func (s *AuthService) LogoutUser(ctx context.Context, sessionID string) *app_errors.AppError {
	sessionKey := fmt.Sprintf("session:%s", sessionID)

	session, err := utils.GetCacheData[SessionTracker](ctx, s.redis, sessionKey)
	if err != nil || session == nil {
		// Session bereits beendet / ungültig
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	userSessionKey := fmt.Sprintf("user_sessions:%s", session.UserID)

	if err := utils.DeleteCacheData(ctx, s.redis, sessionKey); err != nil {
		log.Error().Err(err).Msg("Fehler beim Löschen der Cache")
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	if err := s.redis.SRem(ctx, userSessionKey, session.JTI).Err(); err != nil {
		log.Error().Err(err).Msg("Fehler beim Löschen der Cache")
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	return nil
}

func (s *AuthService) trackSession(ctx context.Context, sessionID, userID, token string, loginMeta auth_dto.LoginMetadata) {
	if loginMeta.Device == "" {
		loginMeta.Device = "Unknown Device"
	}

	session := &SessionTracker{
		JTI:     sessionID,
		UserID:  userID,
		Token:   token,
		Device:  loginMeta.Device,
		Agent:   loginMeta.UserAgent,
		IP:      loginMeta.IP,
		LoginAt: time.Now().Format(time.RFC3339),
	}

	redisKey := fmt.Sprintf("session:%s", sessionID)
	utils.SetCacheData(ctx, s.redis, redisKey, session, 15*time.Minute)

	sessionListKey := fmt.Sprintf("user_sessions:%s", userID)
	s.redis.SAdd(ctx, sessionListKey, session.JTI)
}

package register_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserExists         = "имя пользователя или email уже заняты"
	msgWeakPassword       = "пароль должен содержать минимум 8 символов, заглавные и строчные латинские буквы и цифры"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserExists):
			h.logger.Warn("POST /users - Username or email taken: username=%s", req.Username)
			handlers.RespondConflict(w, msgUserExists)

		case errors.Is(err, users.ErrWeakPassword):
			h.logger.Warn("POST /users - Weak password: username=%s", req.Username)
			handlers.RespondBadRequest(w, msgWeakPassword)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: username=%s, error=%v", req.Username, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /users - Failed to register user: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User registered: user_id=%d, username=%s", user.ID, user.Username)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainUser(user))
}

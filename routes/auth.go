package routes

import (
	"errors"
	"net/http"

	"guestbook-api/db"
	"guestbook-api/models"
	"guestbook-api/pkg"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	store  *db.Store
	secret []byte
}

func NewAuthHandler(store *db.Store, secret []byte) *AuthHandler {
	return &AuthHandler{store: store, secret: secret}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"accessToken"`
}

// Register da de alta un usuario con rol 'usuario'. El chequeo de existencia
// da el 409; la restricción UNIQUE del almacén cubre la carrera entre el
// chequeo y el insert.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Error al analizar el cuerpo de la solicitud",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"mensaje": "Ingrese su email y contraseña para el registro.",
		})
	}

	username := pkg.NormalizeEmail(req.Username)
	violations := pkg.ValidateStruct(pkg.Credentials{
		Username: username,
		Password: req.Password,
	})
	if len(violations) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"errores": violations,
		})
	}
	username = pkg.Sanitize(username)

	existing, err := h.store.UserByUsername(username)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al registrar usuario: " + err.Error(),
		})
	}
	if existing != nil {
		return c.Status(http.StatusConflict).JSON(fiber.Map{
			"mensaje": "El usuario ya existe. Por favor, utilice otro email para el registro.",
		})
	}

	user := models.User{
		Username: username,
		Password: pkg.GeneratePassword(req.Password),
		Role:     models.RoleUsuario,
	}
	if err := h.store.InsertUser(&user); err != nil {
		if errors.Is(err, db.ErrDuplicateUsername) {
			return c.Status(http.StatusConflict).JSON(fiber.Map{
				"mensaje": "El usuario ya existe. Por favor, utilice otro email para el registro.",
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al registrar usuario: " + err.Error(),
		})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"mensaje": "Usuario registrado.",
	})
}

// Login valida credenciales y devuelve un token de acceso de una hora.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Error al analizar el cuerpo de la solicitud",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"mensaje": "Faltan credenciales.",
		})
	}

	user, err := h.store.UserByUsername(pkg.NormalizeEmail(req.Username))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al obtener usuarios: " + err.Error(),
		})
	}
	if user == nil || !pkg.ComparePassword(user.Password, req.Password) {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"mensaje": "Credenciales incorrectas.",
		})
	}

	token, err := pkg.GenerateToken(h.secret, *user)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al generar el token: " + err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(authResponse{AccessToken: token})
}

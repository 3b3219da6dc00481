package routes

import (
	"net/http"
	"strings"

	"guestbook-api/db"
	"guestbook-api/middleware"
	"guestbook-api/models"
	"guestbook-api/pkg"

	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	store *db.Store
}

func NewCommentHandler(store *db.Store) *CommentHandler {
	return &CommentHandler{store: store}
}

type commentRequest struct {
	Apellido string `json:"apellido"`
	Nombre   string `json:"nombre"`
	Asunto   string `json:"asunto"`
	Mensaje  string `json:"mensaje"`
}

func (r *commentRequest) trim() {
	r.Apellido = strings.TrimSpace(r.Apellido)
	r.Nombre = strings.TrimSpace(r.Nombre)
	r.Asunto = strings.TrimSpace(r.Asunto)
	r.Mensaje = strings.TrimSpace(r.Mensaje)
}

// GetComments lista comentarios. El filtro id tiene prioridad sobre email;
// la colección vacía responde 200 con un aviso, no 404.
func (h *CommentHandler) GetComments(c *fiber.Ctx) error {
	comments, err := h.store.Comments()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al obtener comentarios: " + err.Error(),
		})
	}
	if len(comments) == 0 {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"mensaje": "No hay comentarios.",
		})
	}

	if id := c.Query("id"); id != "" {
		comment, err := h.store.CommentByID(id)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error interno del servidor - Error al obtener comentarios: " + err.Error(),
			})
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"comentario": comment})
	}
	if email := c.Query("email"); email != "" {
		byEmail, err := h.store.CommentsByEmail(email)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error interno del servidor - Error al obtener comentarios: " + err.Error(),
			})
		}
		return c.Status(http.StatusOK).JSON(fiber.Map{"comentarios": byEmail})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"comentarios": comments})
}

// AddComment crea un comentario. La fecha la pone el servidor y el email
// sale de la identidad autenticada, nunca del cuerpo de la request.
func (h *CommentHandler) AddComment(c *fiber.Ctx) error {
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Error al analizar el cuerpo de la solicitud",
		})
	}
	req.trim()

	violations := pkg.ValidateStruct(pkg.CommentInput{
		Apellido: req.Apellido,
		Nombre:   req.Nombre,
		Asunto:   req.Asunto,
		Mensaje:  req.Mensaje,
	})
	if len(violations) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"errores": violations,
		})
	}

	claims := middleware.ClaimsFrom(c)
	comment := models.Comment{
		Fecha:    pkg.FechaActual(),
		Apellido: pkg.Sanitize(req.Apellido),
		Nombre:   pkg.Sanitize(req.Nombre),
		Email:    claims.Username,
		Asunto:   pkg.Sanitize(req.Asunto),
		Mensaje:  pkg.Sanitize(req.Mensaje),
	}
	if err := h.store.InsertComment(&comment); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al agregar comentario: " + err.Error(),
		})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"mensaje": "Comentario agregado.",
		"datos":   comment,
	})
}

// EditComment actualiza un comentario existente. Los campos omitidos
// conservan el valor guardado y la fecha original no se toca.
func (h *CommentHandler) EditComment(c *fiber.Ctx) error {
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Error al analizar el cuerpo de la solicitud",
		})
	}
	req.trim()

	comment, err := h.store.CommentByID(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al actualizar comentario: " + err.Error(),
		})
	}
	if comment == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"mensaje": "Comentario no encontrado.",
		})
	}

	claims := middleware.ClaimsFrom(c)
	if claims.Role == models.RoleUsuario && claims.Username != comment.Email {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{
			"mensaje": "No tienes permiso para editar este comentario.",
		})
	}

	violations := pkg.ValidateStruct(pkg.CommentPatch{
		Apellido: req.Apellido,
		Nombre:   req.Nombre,
		Asunto:   req.Asunto,
		Mensaje:  req.Mensaje,
	})
	if len(violations) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"errores": violations,
		})
	}

	if req.Apellido != "" {
		comment.Apellido = pkg.Sanitize(req.Apellido)
	}
	if req.Nombre != "" {
		comment.Nombre = pkg.Sanitize(req.Nombre)
	}
	if req.Asunto != "" {
		comment.Asunto = pkg.Sanitize(req.Asunto)
	}
	if req.Mensaje != "" {
		comment.Mensaje = pkg.Sanitize(req.Mensaje)
	}

	if err := h.store.UpdateComment(comment); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al actualizar comentario: " + err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"mensaje": "Comentario actualizado.",
		"datos":   comment,
	})
}

// DeleteComment elimina un comentario puntual respetando el control por
// dueño: un 'usuario' solo borra los suyos, un admin borra cualquiera.
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	comment, err := h.store.CommentByID(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al eliminar comentario: " + err.Error(),
		})
	}
	if comment == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"mensaje": "Comentario no encontrado.",
		})
	}

	claims := middleware.ClaimsFrom(c)
	if claims.Role == models.RoleUsuario && claims.Username != comment.Email {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{
			"mensaje": "No tienes permiso para eliminar este comentario.",
		})
	}

	if err := h.store.DeleteComment(comment.ID); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al eliminar comentario: " + err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"mensaje": "Comentario eliminado.",
	})
}

// DeleteAll vacía la colección completa. Solo llega acá un admin; la
// respuesta distingue si había algo para borrar.
func (h *CommentHandler) DeleteAll(c *fiber.Ctx) error {
	deleted, err := h.store.DeleteAllComments()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor - Error al eliminar todos los comentarios: " + err.Error(),
		})
	}

	if deleted > 0 {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"mensaje":    "Todos los comentarios fueron eliminados.",
			"eliminados": deleted,
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"mensaje":    "No se encontraron comentarios para eliminar.",
		"eliminados": 0,
	})
}

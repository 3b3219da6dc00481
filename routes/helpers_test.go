package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"guestbook-api/db"
	"guestbook-api/middleware"
	"guestbook-api/models"
	"guestbook-api/pkg"

	"github.com/gofiber/fiber/v2"
)

var testSecret = []byte("secreto-de-prueba")

// newTestApp arma la misma cadena de rutas que main, sin limitadores para
// que las pruebas no choquen contra la cuota.
func newTestApp(t *testing.T) (*fiber.App, *db.Store) {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("abriendo la base de prueba: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	auth := NewAuthHandler(store, testSecret)
	comments := NewCommentHandler(store)

	app := fiber.New()
	protected := middleware.Protected(testSecret)
	anyRole := middleware.RequireRoles(models.RoleAdmin, models.RoleUsuario)

	app.Post("/registro", auth.Register)
	app.Post("/ingreso", auth.Login)
	app.Get("/comentarios", protected, anyRole, comments.GetComments)
	app.Post("/agregar", protected, anyRole, comments.AddComment)
	app.Put("/editar/:id", protected, anyRole, comments.EditComment)
	app.Delete("/eliminar/:id", protected, anyRole, comments.DeleteComment)
	app.Delete("/eliminar", protected, middleware.RequireRoles(models.RoleAdmin), comments.DeleteAll)

	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("codificando el cuerpo: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decodificando la respuesta: %v", err)
	}
	return body
}

// createUser inserta un usuario directo en el almacén y devuelve su token.
func createUser(t *testing.T, store *db.Store, username, role string) string {
	t.Helper()
	user := models.User{
		Username: username,
		Password: pkg.GeneratePassword("Abcdef1"),
		Role:     role,
	}
	if err := store.InsertUser(&user); err != nil {
		t.Fatalf("insertando usuario de prueba: %v", err)
	}
	token, err := pkg.GenerateToken(testSecret, user)
	if err != nil {
		t.Fatalf("generando token de prueba: %v", err)
	}
	return token
}

func addComment(t *testing.T, app *fiber.App, token string, fields map[string]string) map[string]interface{} {
	t.Helper()
	resp := doJSON(t, app, "POST", "/agregar", token, fields)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("agregando comentario: se esperaba 201, se obtuvo %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	datos, ok := body["datos"].(map[string]interface{})
	if !ok {
		t.Fatalf("respuesta sin datos: %v", body)
	}
	return datos
}

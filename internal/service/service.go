package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contactmgr/internal/model"
	"gitlab.com/dirk.krummacker/contactmgr/internal/store"
)

// contacts is a handle to the contacts database.
var contacts *store.Store

// logger writes structured JSON log lines.
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// CreateStore opens the database named in the configuration and makes sure the contacts table
// exists. Existing contacts are kept.
func CreateStore(cfg Config) *store.Store {
	ctx := context.Background()
	s, err := store.Open(ctx, cfg.StoreConfig())
	if err != nil {
		log.Fatal(err)
	}
	if err := s.EnsureSchema(ctx); err != nil {
		s.Close()
		log.Fatal(err)
	}
	return s
}

// SetupStore sets the store the HTTP handlers work on. The store can be backed by a real database
// file for production use or by a mock database within unit tests.
func SetupStore(s *store.Store) {
	contacts = s
}

// SetupHttpRouter initializes the REST API router and registers all endpoints.
func SetupHttpRouter(cfg Config) *gin.Engine {
	var router *gin.Engine
	if strings.EqualFold(cfg.GinLogging, "off") {
		logger.Info("turning off HTTP request logging")
		router = gin.New()
		router.Use(gin.Recovery())
	} else {
		router = gin.Default()
	}
	router.GET("/contacts", findContacts)
	router.POST("/contacts", createContact)
	router.GET("/contacts/:id", findContactByID)
	router.DELETE("/contacts/:id", deleteContactByID)
	return router
}

// findContacts responds with the list of all contacts as JSON, ordered by id.
//
// REST API call:
//
//	> curl "http://localhost:8080/contacts"
func findContacts(c *gin.Context) {
	all, err := contacts.All(c.Request.Context())
	if err != nil {
		abortWithStoreError(c, "find contacts", err)
		return
	}
	if len(all) == 0 {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
	} else {
		c.IndentedJSON(http.StatusOK, all)
	}
}

// createContact saves the contact specified in the request's JSON. It responds with the full
// contact data including the newly assigned id. An id in the request is ignored.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts --request "POST" --include --header "Content-Type: application/json" --data '{"firstname": "Jackie", "lastname": "Samyn", "email": "jackie@gmail.com", "phone": 2197767123}'
func createContact(c *gin.Context) {
	var newContact model.Contact
	if err := c.BindJSON(&newContact); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	id, err := contacts.Save(c.Request.Context(), newContact)
	if err != nil {
		abortWithStoreError(c, "create contact", err)
		return
	}
	newContact.Id = id
	c.IndentedJSON(http.StatusCreated, newContact)
}

// findContactByID locates the contact whose ID value matches the id parameter of the request URL,
// then returns that contact as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/2
func findContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contact, err := contacts.FindByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	if err != nil {
		abortWithStoreError(c, "find contact", err)
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// deleteContactByID deletes the contact whose ID value matches the id parameter of the request URL
// from the database.
//
// Example REST API call:
//
//	> curl http://localhost:8080/contacts/2 --request "DELETE"
func deleteContactByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := contacts.DeleteByID(c.Request.Context(), id)
	if err != nil {
		abortWithStoreError(c, "delete contact", err)
		return
	}
	if deleted {
		c.IndentedJSON(http.StatusOK, gin.H{"message": "contact deleted"})
	} else {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
	}
}

// parseID reads the id URL parameter. A value that is not a number aborts the request with NOT
// FOUND, since no contact can have such an id.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "invalid id parameter"})
		return 0, false
	}
	return id, true
}

// abortWithStoreError logs a failed database call and answers with INTERNAL SERVER ERROR.
func abortWithStoreError(c *gin.Context, op string, err error) {
	logger.Error("database call failed", "op", op, "path", c.Request.URL.Path, "error", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

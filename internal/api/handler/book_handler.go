package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mindxDoc/tester-backend/internal/core/ports"
)

// BookHandler handles HTTP requests for book review operations. All routes
// sit behind the Auth middleware.
type BookHandler struct {
	bookService ports.BookService
}

func NewBookHandler(bookService ports.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// List returns the caller's book reviews.
//
// @Summary      List the caller's book reviews
// @Tags         books
// @Produce      json
// @Param        token  header  string  true  "Signed token"
// @Success      200  {object}  bookListEnvelope
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	books, err := h.bookService.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	items := make([]bookResponse, len(books))
	for i, b := range books {
		items[i] = toBookResponse(b)
	}

	return c.JSON(http.StatusOK, bookListEnvelope{
		Status:  "success",
		Results: len(items),
		Data:    bookListData{Book: items},
	})
}

// Create stores a new review owned by the caller.
//
// @Summary      Create a new book review
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        token  header  string             true  "Signed token"
// @Param        body   body    createBookRequest  true  "Review details"
// @Success      200  {object}  bookEnvelope
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	book, err := h.bookService.Create(c.Request().Context(), identity.UserID, ports.CreateBookInput{
		Title:  req.Title,
		Author: req.Author,
		Review: req.Review,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookEnvelope{
		Status: "success",
		Data:   bookData{Book: toBookResponse(book)},
	})
}

// Get returns a single review by id.
//
// @Summary      Get a book review by id
// @Tags         books
// @Produce      json
// @Param        token  header  string  true  "Signed token"
// @Param        id     path    int     true  "Review id"
// @Success      200  {object}  bookEnvelope
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse  "Book not found"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	id, err := bookID(c)
	if err != nil {
		return err
	}

	book, err := h.bookService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookEnvelope{
		Status: "success",
		Data:   bookData{Book: toBookResponse(book)},
	})
}

// Update rewrites a review owned by the caller.
//
// @Summary      Update a book review by id
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        token  header  string             true  "Signed token"
// @Param        id     path    int                true  "Review id"
// @Param        body   body    updateBookRequest  true  "Replacement fields"
// @Success      200  {object}  bookEnvelope
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse  "This book review is not yours"
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := bookID(c)
	if err != nil {
		return err
	}

	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	book, err := h.bookService.Update(c.Request().Context(), id, identity.UserID, ports.UpdateBookInput{
		Title:  req.Title,
		Author: req.Author,
		Review: req.Review,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookEnvelope{
		Status: "success",
		Data:   bookData{Book: toBookResponse(book)},
	})
}

// Delete removes a review owned by the caller.
//
// @Summary      Remove a book review by id
// @Tags         books
// @Param        token  header  string  true  "Signed token"
// @Param        id     path    int     true  "Review id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse  "This book review is not yours"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := bookID(c)
	if err != nil {
		return err
	}

	if err := h.bookService.Delete(c.Request().Context(), id, identity.UserID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func bookID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}
	return id, nil
}

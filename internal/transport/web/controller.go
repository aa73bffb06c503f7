package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"book_catalog_web/config"
	"book_catalog_web/data/session"
	"book_catalog_web/internal/converter/viewConverter"
	"book_catalog_web/internal/grid"
	"book_catalog_web/internal/model"
	"book_catalog_web/internal/service"
	"book_catalog_web/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=controller.go -destination=mocks/mocks.go -package=mocks

type CatalogService interface {
	GetBooksForPage(ctx context.Context, page int) (booksPage model.BooksPage, err error)
	GetBookDetails(ctx context.Context, identifier string) (details model.BookDetails, err error)
	TotalPages() int
}

type Session interface {
	GetSession(ctx context.Context, visitorID string) (model.Session, error)
	SetSession(ctx context.Context, visitorID string, session model.Session) error
	GetPageRequest(ctx context.Context, visitorID, gridID string) (model.PageRequest, error)
	SetPageRequest(ctx context.Context, visitorID string, request model.PageRequest) error
}

type Controller struct {
	cfg            *config.Config
	grid           *grid.Grid
	catalogService CatalogService
	session        Session
	now            func() time.Time
}

func NewController(cfg *config.Config, catalogService CatalogService, session Session) *Controller {
	return &Controller{
		cfg:            cfg,
		grid:           grid.New(cfg.Grid.PageSize, cfg.Grid.PlaceholderCount),
		catalogService: catalogService,
		session:        session,
		now:            time.Now,
	}
}

func (ctrl *Controller) getSession(ctx context.Context, visitorID string) (model.Session, error) {
	visitorSession, err := ctrl.session.GetSession(ctx, visitorID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return model.Session{VisitorID: visitorID}, nil
		}
		return model.Session{}, err
	}
	return visitorSession, nil
}

// startPageRequest records a new outstanding read for the grid instance
// gridID and returns the grid in its loading state.
func (ctrl *Controller) startPageRequest(c *gin.Context, gridID string) (gridView viewConverter.GridView, ok bool) {
	op := "Controller.startPageRequest"
	ctx := c.Request.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)
	visitorID := getVisitorID(c)

	page, err := grid.ParsePage(c.Query("page"))
	if err != nil {
		ctrl.renderMessage(c, http.StatusBadRequest, incorrectPageMsg)
		return viewConverter.GridView{}, false
	}

	totalPages := ctrl.catalogService.TotalPages()
	request, err := ctrl.grid.NewRequest(gridID, page, totalPages, ctrl.now())
	if err != nil {
		slog.Warn("incorrect page requested", slog.String("rqID", rqID), slog.String("op", op), slog.Int("page", page))
		ctrl.renderMessage(c, http.StatusBadRequest, incorrectPageMsg)
		return viewConverter.GridView{}, false
	}

	visitorSession, err := ctrl.getSession(ctx, visitorID)
	if err != nil {
		slog.Error("got error from session.GetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		ctrl.renderMessage(c, http.StatusInternalServerError, internalErrMsg)
		return viewConverter.GridView{}, false
	}

	if err = ctrl.session.SetPageRequest(ctx, visitorID, request); err != nil {
		slog.Error("got error from session.SetPageRequest", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		ctrl.renderMessage(c, http.StatusInternalServerError, internalErrMsg)
		return viewConverter.GridView{}, false
	}

	visitorSession.VisitorID = visitorID
	visitorSession.PageRequest = request
	if err = ctrl.session.SetSession(ctx, visitorID, visitorSession); err != nil {
		slog.Warn("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	return viewConverter.GridLoading(request, ctrl.grid.Placeholders(), totalPages), true
}

// Home renders the page shell with a new grid instance loading the
// requested page.
func (ctrl *Controller) Home(c *gin.Context) {
	gridView, ok := ctrl.startPageRequest(c, grid.NewInstanceID())
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "home", viewConverter.Home(gridView))
}

// ChangePage answers a pager click: the grid goes back to loading for the
// new page.
func (ctrl *Controller) ChangePage(c *gin.Context) {
	gridID, err := grid.ParseInstanceID(c.Query("grid"))
	if err != nil {
		ctrl.renderMessage(c, http.StatusBadRequest, incorrectGridMsg)
		return
	}

	gridView, ok := ctrl.startPageRequest(c, gridID)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "grid", gridView)
}

// GridBooks performs the read started by Home or ChangePage. A failed or
// stale read answers 204 so the grid keeps whatever it shows.
func (ctrl *Controller) GridBooks(c *gin.Context) {
	op := "Controller.GridBooks"
	ctx := c.Request.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)
	visitorID := getVisitorID(c)
	tag := c.Query("tag")

	page, err := grid.ParsePage(c.Query("page"))
	if err != nil || tag == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	gridID, err := grid.ParseInstanceID(c.Query("grid"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	booksPage, err := ctrl.catalogService.GetBooksForPage(ctx, page)
	if err != nil {
		slog.Error(
			"got error from catalogService.GetBooksForPage",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.Int("page", page),
			slog.String("err", err.Error()),
		)
		c.Status(http.StatusNoContent)
		return
	}

	current, err := ctrl.session.GetPageRequest(ctx, visitorID, gridID)
	if err != nil {
		slog.Error("got error from session.GetPageRequest", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		c.Status(http.StatusNoContent)
		return
	}

	if !grid.IsCurrent(current, page, tag) {
		slog.Info(
			"stale books page discarded",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("grid", gridID),
			slog.Int("page", page),
			slog.Int("currentPage", current.Page),
		)
		c.Status(http.StatusNoContent)
		return
	}

	c.HTML(http.StatusOK, "grid", viewConverter.GridBooks(booksPage, gridID, ctrl.catalogService.TotalPages()))
}

func (ctrl *Controller) Review(c *gin.Context) {
	op := "Controller.Review"
	ctx := c.Request.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)
	identifier := c.Param("identifier")

	details, err := ctrl.catalogService.GetBookDetails(ctx, identifier)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			slog.Warn("book not found", slog.String("rqID", rqID), slog.String("op", op), slog.String("identifier", identifier))
			ctrl.renderMessage(c, http.StatusNotFound, bookNotFoundMsg)
			return
		}
		slog.Error("got error from catalogService.GetBookDetails", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		ctrl.renderMessage(c, http.StatusBadGateway, catalogUnavailMsg)
		return
	}

	c.HTML(http.StatusOK, "review", viewConverter.Book(details))
}

func (ctrl *Controller) UserAction(c *gin.Context) {
	op := "Controller.UserAction"
	ctx := c.Request.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	visitorSession, err := ctrl.getSession(ctx, getVisitorID(c))
	if err != nil {
		slog.Warn("got error from session.GetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		visitorSession = model.Session{}
	}

	c.HTML(http.StatusOK, "user_action", viewConverter.UserAction(visitorSession))
}

func (ctrl *Controller) NotFound(c *gin.Context) {
	ctrl.renderMessage(c, http.StatusNotFound, pageNotFoundMsg)
}

func (ctrl *Controller) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (ctrl *Controller) renderMessage(c *gin.Context, status int, message string) {
	c.HTML(status, "message", viewConverter.Message(http.StatusText(status), message))
}

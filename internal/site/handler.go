// Package site renders the public one-page site: hero, menu with category
// tabs, story, gallery and the reservation form.
package site

import (
	"context"
	"net/http"

	"bellavista/internal/contact"
	"bellavista/internal/contactform"
	"bellavista/internal/menu"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const menuUnavailable = "Failed to load menu. Please try again later."

type Handler struct {
	catalog   menu.Lister
	submitter contactform.Submitter
	info      Info
	log       *zap.Logger
}

func NewHandler(catalog menu.Lister, submitter contactform.Submitter, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		catalog:   catalog,
		submitter: submitter,
		info:      BellaVista,
		log:       log,
	}
}

type page struct {
	Info       Info
	Tabs       []menu.Tab
	ActiveTab  string
	Items      []menu.Item
	MenuError  string
	Fields     contact.Input
	Errors     contact.FieldErrors
	Notice     *contactform.Notification
	PartySizes []partyOption
}

func (h *Handler) newPage(ctx context.Context, tab string) page {
	if tab == "" {
		tab = menu.TabAll
	}
	p := page{
		Info:       h.info,
		Tabs:       menu.Tabs,
		ActiveTab:  tab,
		Errors:     contact.FieldErrors{},
		PartySizes: partySizes(),
	}

	view, err := menu.NewView(ctx, h.catalog)
	if err != nil {
		h.log.Error("render menu failed", zap.Error(err))
		p.MenuError = menuUnavailable
		return p
	}
	p.Items = view.Select(tab)
	return p
}

// --------------------------------------------------
// GET /
// --------------------------------------------------
func (h *Handler) Home(c *gin.Context) {
	p := h.newPage(c.Request.Context(), c.Query("category"))
	c.HTML(http.StatusOK, "home.tmpl", p)
}

// --------------------------------------------------
// POST /contact
// --------------------------------------------------
func (h *Handler) SubmitContact(c *gin.Context) {
	p := h.newPage(c.Request.Context(), c.Query("category"))

	var in contact.Input
	if err := c.ShouldBind(&in); err != nil {
		p.Notice = &contactform.Notification{Kind: contactform.NoticeError, Message: contactform.GenericFailure}
		c.HTML(http.StatusBadRequest, "home.tmpl", p)
		return
	}

	form := contactform.New(h.submitter, contactform.WithLogger(h.log))
	defer form.Close()
	form.SetFields(in)

	err := form.Submit(c.Request.Context())
	p.Fields = form.Fields()
	p.Notice = form.Notification()

	if err != nil {
		if _, ok := contact.AsValidationError(err); ok {
			p.Errors = form.FieldErrors()
			c.HTML(http.StatusBadRequest, "home.tmpl", p)
			return
		}
		_ = c.Error(err)
		p.Notice = &contactform.Notification{Kind: contactform.NoticeError, Message: contactform.GenericFailure}
		c.HTML(http.StatusInternalServerError, "home.tmpl", p)
		return
	}

	c.HTML(http.StatusOK, "home.tmpl", p)
}

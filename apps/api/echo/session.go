package echoapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/trezcool/mahudhurio/core"
	"github.com/trezcool/mahudhurio/core/session"
)

const qrCodeSize = 256 // px

type sessionApi struct {
	conf *core.Config
	svc  *session.Service
}

func registerSessionAPI(e *echo.Echo, jwt echo.MiddlewareFunc, conf *core.Config, svc *session.Service) {
	api := sessionApi{conf: conf, svc: svc}

	// the QR code is scanned by unauthenticated students
	e.GET("/sessions/:id/qr.png", api.qrCode)
	e.GET("/sessions/:id", api.queryByCourse)

	sg := e.Group("/sessions", jwt)
	sg.POST("", api.create)
	sg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *sessionApi) create(ctx echo.Context) error {
	var data session.NewSession
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSession")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sess, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating session")
	}
	return ctx.JSON(http.StatusCreated, sess)
}

// queryByCourse lists all the sessions of the course in the `id` param.
func (api *sessionApi) queryByCourse(ctx echo.Context) error {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	sessions, err := api.svc.QueryByCourse(courseID)
	if err != nil {
		return errors.Wrap(err, "querying sessions")
	}
	if sessions == nil {
		sessions = []session.Session{}
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (api *sessionApi) destroy(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	if err := api.svc.Delete(id); err != nil {
		if errors.Cause(err) == session.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting session")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// qrCode renders the session's check-in link as a QR code PNG.
func (api *sessionApi) qrCode(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	sess, err := api.svc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == session.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding session by ID")
	}

	url := fmt.Sprintf("%s/attend/%s", api.conf.FrontendBaseURL, sess.QRToken)
	png, err := qrcode.Encode(url, qrcode.Medium, qrCodeSize)
	if err != nil {
		return errors.Wrap(err, "encoding QR code")
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

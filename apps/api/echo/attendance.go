package echoapi

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/mahudhurio/core/attendance"
	"github.com/trezcool/mahudhurio/core/session"
)

var csvHeader = []string{"id", "session_id", "name", "surname", "timestamp", "ip"}

type attendanceApi struct {
	svc *attendance.Service
}

func registerAttendanceAPI(e *echo.Echo, jwt echo.MiddlewareFunc, svc *attendance.Service) {
	api := attendanceApi{svc: svc}

	// students check in anonymously; no auth
	e.POST("/attend", api.submit)

	sg := e.Group("/sessions", jwt)
	sg.GET("/:id/attendances", api.queryBySession)
	sg.GET("/:id/attendances.csv", api.exportCSV)
}

// Handlers

func (api *attendanceApi) submit(ctx echo.Context) error {
	var data attendance.SubmitAttendance
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmitAttendance")
	}
	data.IP = ctx.RealIP()
	if err := data.Validate(); err != nil {
		return err
	}

	att, err := api.svc.Submit(data)
	if err != nil {
		if errors.Cause(err) == session.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "submitting attendance")
	}
	return ctx.JSON(http.StatusCreated, att)
}

func (api *attendanceApi) queryBySession(ctx echo.Context) error {
	sessionID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	attendances, err := api.svc.QueryBySession(sessionID)
	if err != nil {
		return errors.Wrap(err, "querying attendances")
	}
	if attendances == nil {
		attendances = []attendance.Attendance{}
	}
	return ctx.JSON(http.StatusOK, attendances)
}

func (api *attendanceApi) exportCSV(ctx echo.Context) error {
	sessionID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	attendances, err := api.svc.QueryBySession(sessionID)
	if err != nil {
		return errors.Wrap(err, "querying attendances")
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=session_%d_attendances.csv", sessionID))
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err = w.Write(csvHeader); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for _, att := range attendances {
		record := []string{
			strconv.Itoa(att.ID),
			strconv.Itoa(att.SessionID),
			att.Name,
			att.Surname,
			att.Timestamp.Format(time.RFC3339),
			att.IP,
		}
		if err = w.Write(record); err != nil {
			return errors.Wrap(err, "writing CSV record")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flushing CSV")
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShivamGupta987/Google-Calendar/internal/calendar"
	"github.com/ShivamGupta987/Google-Calendar/internal/response"
	"github.com/ShivamGupta987/Google-Calendar/internal/service"
)

func ListEvents(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := app.Events().ListEvents(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch events")
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func GetEvent(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := service.GetEvent(c.Request.Context(), app.Events(), c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch event")
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func PostEvent(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.EventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateEventRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		event, err := service.CreateEvent(c.Request.Context(), app.Events(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Failed to create event")
			return
		}
		c.JSON(http.StatusCreated, event)
	}
}

func PutEvent(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd service.EventUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateEventUpdate(&upd); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		event, err := service.UpdateEvent(c.Request.Context(), app.Events(), c.Param("id"), &upd)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Failed to update event")
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func DeleteEvent(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.DeleteEvent(c.Request.Context(), app.Events(), c.Param("id")); err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to delete event")
			return
		}
		c.JSON(http.StatusOK, response.New("Event removed"))
	}
}

// ExportEventsICS serves the whole calendar as an iCalendar document.
func ExportEventsICS(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := app.Events().ListEvents(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch events")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
		c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(calendar.ICS(events)))
	}
}

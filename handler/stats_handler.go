package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/riadev/ria-server/middleware"
	"github.com/riadev/ria-server/repository"
	"github.com/riadev/ria-server/stats"
	"github.com/riadev/ria-server/usecase"
	"github.com/riadev/ria-server/utils"
)

type StatsHandler struct {
	notesService *usecase.NotesService

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

func NewStatsHandler(notesService *usecase.NotesService) *StatsHandler {
	return &StatsHandler{notesService: notesService, now: time.Now}
}

// GetUserStats derives the statistics overview from the user's full note
// collection on every call; nothing is cached server-side.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	phone := c.GetString(middleware.UserPhoneKey)

	notes, err := h.notesService.ListNotes(c.Request.Context(), phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("stats error for %s: %v", phone, err)
		utils.InternalError(c, "Failed to compute stats")
		return
	}

	now := h.now()
	c.JSON(http.StatusOK, gin.H{
		"total":          len(notes),
		"streak":         stats.Streak(notes, now),
		"today":          stats.TodayCount(notes, now),
		"week":           stats.WeekCount(notes, now),
		"month":          stats.MonthCount(notes, now),
		"avg_per_day":    stats.AverageDaily(notes, now),
		"recording_days": stats.RecordingDays(notes, now),
		"unique_tags":    stats.UniqueTagCount(notes),
		"top_tags":       stats.TopTags(notes, 5),
		"active_slot":    stats.ActiveTimeSlot(notes, now.Location()),
		"trend":          stats.Trend(notes, 7, now),
		"week_heatmap":   stats.WeekHeatmap(notes, now),
	})
}

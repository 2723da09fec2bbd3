package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riadev/ria-server/dto"
	"github.com/riadev/ria-server/middleware"
	"github.com/riadev/ria-server/repository"
	"github.com/riadev/ria-server/usecase"
	"github.com/riadev/ria-server/utils"
)

func GetNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	phone := c.GetString(middleware.UserPhoneKey)

	notes, err := notesService.ListNotes(c.Request.Context(), phone)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.ErrorsTotal.WithLabelValues("not_found").Inc()
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("list notes error: %v", err)
		utils.InternalError(c, "Failed to get notes")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("list").Inc()
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	phone := c.GetString(middleware.UserPhoneKey)

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, usecase.ErrContentRequired.Error())
		return
	}

	note, err := notesService.CreateNote(c.Request.Context(), phone, req.Content, req.Tags)
	if err != nil {
		respondNoteError(c, err, "Failed to create note")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("create").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	phone := c.GetString(middleware.UserPhoneKey)
	noteID := c.Param("id")

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, usecase.ErrContentRequired.Error())
		return
	}

	note, err := notesService.UpdateNote(c.Request.Context(), phone, noteID, req.Content, req.Tags)
	if err != nil {
		respondNoteError(c, err, "Failed to update note")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("update").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	phone := c.GetString(middleware.UserPhoneKey)
	noteID := c.Param("id")

	if err := notesService.DeleteNote(c.Request.Context(), phone, noteID); err != nil {
		respondNoteError(c, err, "Failed to delete note")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("delete").Inc()
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondNoteError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrContentRequired),
		errors.Is(err, usecase.ErrTooManyTags):
		middleware.ErrorsTotal.WithLabelValues("validation").Inc()
		utils.BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrNoteNotFound):
		middleware.ErrorsTotal.WithLabelValues("not_found").Inc()
		utils.NotFound(c, "Note not found")
	default:
		log.Printf("note error: %v", err)
		middleware.ErrorsTotal.WithLabelValues("internal").Inc()
		utils.InternalError(c, fallback)
	}
}

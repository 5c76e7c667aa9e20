package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbot/backend/internal/application/usecase/chat"
	"github.com/finbot/backend/internal/integration/entrypoint/dto"
)

// ChatController handles the chat endpoint.
type ChatController struct {
	chatUseCase *chat.ChatUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(chatUseCase *chat.ChatUseCase) *ChatController {
	return &ChatController{
		chatUseCase: chatUseCase,
	}
}

// Chat handles POST /datasets/:id/chat requests.
func (c *ChatController) Chat(ctx *gin.Context) {
	datasetID, ok := parseDatasetID(ctx)
	if !ok {
		return
	}

	var request dto.ChatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	output, err := c.chatUseCase.Execute(ctx.Request.Context(), chat.ChatInput{
		DatasetID: datasetID,
		Message:   request.Message,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatResponse(output))
}

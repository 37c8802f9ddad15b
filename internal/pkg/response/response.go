package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error payload for every non-2xx response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// PageData wraps a paginated listing.
type PageData struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Items    interface{} `json:"items"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Page(c *gin.Context, total int64, page, pageSize int, items interface{}) {
	c.JSON(http.StatusOK, PageData{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    items,
	})
}

func BadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Detail: detail})
}

func NotFound(c *gin.Context, detail string) {
	c.JSON(http.StatusNotFound, ErrorBody{Detail: detail})
}

func ServerError(c *gin.Context, detail string) {
	if detail == "" {
		detail = "internal server error"
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Detail: detail})
}

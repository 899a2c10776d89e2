package controller

import (
	"strconv"

	"coursepro_backend/internal/repository"
	"coursepro_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric path parameter. A zero return with ok=false means
// the 400 has already been written.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}

func pagination(c *gin.Context) repository.Pagination {
	return repository.NewPagination(
		queryInt(c, "page", 1),
		queryInt(c, "limit", repository.DefaultLimit),
	)
}

func paginationBlock(p repository.Pagination, total int64) util.Pagination {
	return util.Pagination{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: p.Pages(total),
	}
}

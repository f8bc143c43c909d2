package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds the create note request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list notes query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSearchReq binds the search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update note request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.ID = c.Param("id"); req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

// processGenerateReq binds the generate request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processGenerateAndSaveReq binds the generate-and-save request body.
func (h *handler) processGenerateAndSaveReq(c *gin.Context) (generateAndSaveReq, error) {
	var req generateAndSaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processTranslateReq binds the translate request body + URI param.
func (h *handler) processTranslateReq(c *gin.Context) (translateReq, error) {
	var req translateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.ID = c.Param("id"); req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

// processInferReq binds the infer request body.
func (h *handler) processInferReq(c *gin.Context) (inferReq, error) {
	var req inferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

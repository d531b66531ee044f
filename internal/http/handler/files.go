package handler

import (
	"encoding/base64"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"filesmanager/internal/model"
	"filesmanager/internal/service"
)

// uploadRequest is the JSON body of POST /files. Data is base64.
type uploadRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	ParentID model.ParentRef `json:"parentId"`
	IsPublic bool            `json:"isPublic"`
	Data     string          `json:"data"`
}

// decodeUpload parses the body of POST /files. msg is the client error for a
// malformed body. data is decoded only for content-bearing kinds; folders
// ignore it.
func decodeUpload(c *fiber.Ctx) (req uploadRequest, data []byte, msg string) {
	if body := c.Body(); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, &req); err != nil {
			return req, nil, msgInvalidBody
		}
	}
	if req.Data == "" || req.Type == string(model.KindFolder) {
		return req, nil, ""
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return req, nil, msgInvalidData
	}
	return req, data, ""
}

// UploadFile godoc
// @Summary      Create a folder, file or image
// @Tags         files
// @Accept       json
// @Produce      json
// @Param        X-Token  header  string         true  "session token"
// @Param        body     body    uploadRequest  true  "node to create"
// @Success      201  {object}  model.FileNode
// @Failure      400  {object}  errorPayload
// @Failure      401  {object}  errorPayload
// @Router       /files [post]
func UploadFile(mgr service.FilesManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, data, msg := decodeUpload(c)
		if msg != "" {
			if err := mgr.Authenticate(c.UserContext(), c.Get(TokenHeader)); err != nil {
				return respondError(c, err)
			}
			return writeError(c, fiber.StatusBadRequest, msg)
		}

		node, err := mgr.Upload(c.UserContext(), c.Get(TokenHeader), service.CreateFileInput{
			Name:     req.Name,
			Type:     req.Type,
			ParentID: req.ParentID,
			IsPublic: req.IsPublic,
			Data:     data,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(node)
	}
}

// ShowFile godoc
// @Summary      File metadata
// @Tags         files
// @Produce      json
// @Param        X-Token  header  string  true  "session token"
// @Param        id       path    string  true  "file id"
// @Success      200  {object}  model.FileNode
// @Failure      401  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /files/{id} [get]
func ShowFile(mgr service.FilesManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		node, err := mgr.Show(c.UserContext(), c.Get(TokenHeader), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(node)
	}
}

// IndexFiles godoc
// @Summary      List the caller's files under a folder
// @Tags         files
// @Produce      json
// @Param        X-Token   header  string  true   "session token"
// @Param        parentId  query   string  false  "parent folder id, 0 for root"
// @Param        page      query   int     false  "0-based page of 20"
// @Success      200  {array}   model.FileNode
// @Failure      401  {object}  errorPayload
// @Router       /files [get]
func IndexFiles(mgr service.FilesManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parent := model.ParentID(c.Query("parentId"))
		page, err := strconv.Atoi(c.Query("page"))
		if err != nil {
			page = 0
		}

		items, err := mgr.Index(c.UserContext(), c.Get(TokenHeader), parent, page)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(items)
	}
}

// PublishFile godoc
// @Summary      Make a file public
// @Tags         files
// @Produce      json
// @Param        X-Token  header  string  true  "session token"
// @Param        id       path    string  true  "file id"
// @Success      200  {object}  model.FileNode
// @Failure      401  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /files/{id}/publish [put]
func PublishFile(mgr service.FilesManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		node, err := mgr.Publish(c.UserContext(), c.Get(TokenHeader), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(node)
	}
}

// UnpublishFile godoc
// @Summary      Make a file private
// @Tags         files
// @Produce      json
// @Param        X-Token  header  string  true  "session token"
// @Param        id       path    string  true  "file id"
// @Success      200  {object}  model.FileNode
// @Failure      401  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /files/{id}/unpublish [put]
func UnpublishFile(mgr service.FilesManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		node, err := mgr.Unpublish(c.UserContext(), c.Get(TokenHeader), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(node)
	}
}

// FileData godoc
// @Summary      Raw content of a file or image
// @Tags         files
// @Produce      octet-stream
// @Param        X-Token  header  string  false  "session token"
// @Param        id       path    string  true   "file id"
// @Success      200
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /files/{id}/data [get]
func FileData(mgr service.FilesManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := mgr.Data(c.UserContext(), c.Get(TokenHeader), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, content.ContentType)
		return c.Status(fiber.StatusOK).Send(content.Data)
	}
}

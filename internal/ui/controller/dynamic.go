package controller

import (
	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
)

// DynamicController shows a static text body.
type DynamicController struct {
	screenBase
}

// NewDynamicController creates a text screen.
func NewDynamicController(id entity.ScreenID, route string, params entity.ResolvedScreenParams, nav port.Navigator) *DynamicController {
	return &DynamicController{screenBase: newScreenBase(id, route, params, nav)}
}

// Content returns the text to display.
func (c *DynamicController) Content() string {
	return c.params.Content
}

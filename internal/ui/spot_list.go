package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/ngmaloney/jiai-terminal/internal/geocoding"
	"github.com/ngmaloney/jiai-terminal/internal/models"
)

// spotItem wraps a Spot for use in a list
type spotItem struct {
	spot models.Spot
}

// FilterValue implements list.Item
func (s spotItem) FilterValue() string {
	return s.spot.Name
}

// Title implements list.DefaultItem
func (s spotItem) Title() string {
	if s.spot.Preset {
		return s.spot.Name
	}
	return s.spot.Name + " ✎"
}

// Description implements list.DefaultItem
func (s spotItem) Description() string {
	desc := fmt.Sprintf("%.4f, %.4f", s.spot.Latitude, s.spot.Longitude)
	if s.spot.Style != "" {
		desc += " • " + s.spot.Style
	}
	return desc
}

func (s spotItem) location() *geocoding.Location {
	return &geocoding.Location{
		Latitude:  s.spot.Latitude,
		Longitude: s.spot.Longitude,
		Name:      s.spot.Name,
		Style:     s.spot.Style,
	}
}

// createSpotList creates a list.Model from spots
func createSpotList(spots []models.Spot, width, height int) list.Model {
	items := make([]list.Item, len(spots))
	for i, spot := range spots {
		items[i] = spotItem{spot: spot}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "釣り場を選択"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return l
}

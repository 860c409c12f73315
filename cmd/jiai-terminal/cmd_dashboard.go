package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ngmaloney/jiai-terminal/internal/ui"
)

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	q, err := requestQuery(cfg, time.Now())
	if err != nil {
		return err
	}

	logger.Info("dashboard_started", zap.String("date", q.Date.Format("2006-01-02")), zap.Int("hour", q.Hour))

	m := ui.NewModel(ui.Options{
		Builder:  a.builder,
		Geocoder: a.geocoder,
		Spots:    a.spots,
		Date:     q.Date,
		Hour:     q.Hour,
		Style:    q.Style,
		Simulate: q.Simulate,
		Timeout:  cfg.GetAPITimeout(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

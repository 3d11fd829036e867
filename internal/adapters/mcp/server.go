// Package mcp provides the MCP (Model Context Protocol) server exposing
// the focus engine to AI assistants.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/focuskit/focuskit/internal/domain"
	"github.com/focuskit/focuskit/internal/engine"
	"github.com/focuskit/focuskit/internal/insights"
	"github.com/focuskit/focuskit/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server   *server.MCPServer
	engine   *engine.Engine
	subjects ports.SubjectRepository
}

// NewServer creates a new MCP server over the engine.
func NewServer(eng *engine.Engine, subjects ports.SubjectRepository) *Server {
	s := &Server{
		server:   server.NewMCPServer("focuskit", "1.0.0", server.WithLogging()),
		engine:   eng,
		subjects: subjects,
	}
	s.registerTools()
	return s
}

// Start runs the MCP server over stdio until the client disconnects.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_state",
			mcp.WithDescription("Get the current focus engine state: mode, remaining time, streak, daily goal, and today's stats"),
		),
		s.handleGetState,
	)

	startTool := mcp.NewTool(
		"start_focus",
		mcp.WithDescription("Start a new focus session"),
		mcp.WithString(
			"subject_id",
			mcp.Description("Optional subject ID to focus on"),
		),
		mcp.WithNumber(
			"duration_minutes",
			mcp.Description("Optional custom duration in minutes (default: configured focus duration)"),
		),
	)
	s.server.AddTool(startTool, s.handleStartFocus)

	s.server.AddTool(
		mcp.NewTool("pause_focus", mcp.WithDescription("Pause the active focus session")),
		s.handlePauseFocus,
	)
	s.server.AddTool(
		mcp.NewTool("resume_focus", mcp.WithDescription("Resume a paused focus session")),
		s.handleResumeFocus,
	)
	s.server.AddTool(
		mcp.NewTool("stop_focus", mcp.WithDescription("Complete the active focus session")),
		s.handleStopFocus,
	)
	s.server.AddTool(
		mcp.NewTool("cancel_focus", mcp.WithDescription("Cancel the active focus session")),
		s.handleCancelFocus,
	)

	breakTool := mcp.NewTool(
		"start_break",
		mcp.WithDescription("Start a break"),
		mcp.WithBoolean(
			"long",
			mcp.Description("Take the long break instead of the short one"),
		),
	)
	s.server.AddTool(breakTool, s.handleStartBreak)

	subjectsTool := mcp.NewTool(
		"list_subjects",
		mcp.WithDescription("List focus subjects, optionally filtered by status"),
		mcp.WithString(
			"status",
			mcp.Description("Filter subjects by status: todo, doing, done"),
			mcp.Enum("todo", "doing", "done"),
		),
	)
	s.server.AddTool(subjectsTool, s.handleListSubjects)

	s.server.AddTool(
		mcp.NewTool("get_stats", mcp.WithDescription("Get focus statistics: totals, today, this week, streak")),
		s.handleGetStats,
	)
	s.server.AddTool(
		mcp.NewTool("get_insights", mcp.WithDescription("Get correlations and activity patterns mined from the event log")),
		s.handleGetInsights,
	)
}

// handleGetState handles the get_state tool.
func (s *Server) handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.engine.Snapshot()

	result := map[string]any{
		"mode":            string(snap.Mode),
		"remaining":       snap.Remaining.Round(time.Second).String(),
		"progress":        snap.Progress,
		"pomodoros_today": snap.PomodorosToday,
		"current_streak":  snap.Streak.CurrentStreak,
		"goal_minutes":    snap.Goal.TargetMinutes,
		"goal_completed":  snap.Goal.CompletedMinutes,
	}
	if snap.Active != nil {
		session := map[string]any{
			"id":           snap.Active.ID,
			"started_at":   snap.Active.StartedAt.Format(time.RFC3339),
			"target":       snap.Active.TargetDuration.String(),
			"distractions": snap.Active.DistractionCount,
		}
		if snap.Active.SubjectTitle != "" {
			session["subject"] = snap.Active.SubjectTitle
		}
		result["session"] = session
	}

	return marshalResult(result)
}

// handleStartFocus handles the start_focus tool.
func (s *Server) handleStartFocus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var subject *domain.Subject
	if id := request.GetString("subject_id", ""); id != "" {
		found, err := s.subjects.FindByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("subject not found: %v", err)), nil
		}
		subject = found
	}

	var duration time.Duration
	if d := request.GetFloat("duration_minutes", 0); d > 0 {
		duration = time.Duration(d) * time.Minute
	}

	session, err := s.engine.StartSession(ctx, subject, duration)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to start session: %v", err)), nil
	}

	return marshalResult(map[string]any{
		"id":         session.ID,
		"target":     session.TargetDuration.String(),
		"started_at": session.StartedAt.Format(time.RFC3339),
	})
}

// handlePauseFocus handles the pause_focus tool.
func (s *Server) handlePauseFocus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.engine.PauseSession(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("session paused"), nil
}

// handleResumeFocus handles the resume_focus tool.
func (s *Server) handleResumeFocus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.engine.ResumeSession(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("session resumed"), nil
}

// handleStopFocus handles the stop_focus tool.
func (s *Server) handleStopFocus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	record, err := s.engine.EndSession(domain.EndCompleted)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return marshalResult(map[string]any{
		"id":       record.ID,
		"duration": record.Duration.Round(time.Second).String(),
		"reason":   string(record.EndReason),
	})
}

// handleCancelFocus handles the cancel_focus tool.
func (s *Server) handleCancelFocus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.engine.CancelSession(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("session cancelled"), nil
}

// handleStartBreak handles the start_break tool.
func (s *Server) handleStartBreak(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	long := request.GetBool("long", false)
	if err := s.engine.StartBreak(long); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("break started"), nil
}

// handleListSubjects handles the list_subjects tool.
func (s *Server) handleListSubjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var status *domain.SubjectStatus
	if raw := request.GetString("status", ""); raw != "" {
		st := domain.SubjectStatus(raw)
		status = &st
	}

	subjects, err := s.subjects.FindAll(ctx, status)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list subjects: %v", err)), nil
	}

	list := make([]map[string]any, 0, len(subjects))
	for _, subject := range subjects {
		list = append(list, map[string]any{
			"id":     subject.ID,
			"title":  subject.Title,
			"status": string(subject.Status),
		})
	}

	return marshalResult(map[string]any{
		"subjects": list,
		"total":    len(list),
	})
}

// handleGetStats handles the get_stats tool.
func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.engine.Snapshot()

	return marshalResult(map[string]any{
		"total_focus_time":   snap.Stats.TotalFocusTime.Round(time.Second).String(),
		"total_sessions":     snap.Stats.TotalSessions,
		"today_focus_time":   snap.Stats.TodayFocusTime.Round(time.Second).String(),
		"today_sessions":     snap.Stats.TodaySessions,
		"week_focus_time":    snap.Stats.ThisWeekFocusTime.Round(time.Second).String(),
		"week_sessions":      snap.Stats.ThisWeekSessions,
		"average_duration":   snap.Stats.AverageDuration.Round(time.Second).String(),
		"total_distractions": snap.Stats.TotalDistractions,
		"current_streak":     snap.Streak.CurrentStreak,
		"longest_streak":     snap.Streak.LongestStreak,
	})
}

// handleGetInsights handles the get_insights tool.
func (s *Server) handleGetInsights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	events := s.engine.Events()
	now := time.Now()

	correlations := insights.Correlations(events, now)
	patterns := insights.Detect(events)

	lines := make([]string, 0, len(correlations))
	for _, c := range correlations {
		lines = append(lines, c.Insight)
	}

	result := map[string]any{
		"correlations": lines,
		"event_count":  len(events),
	}
	if patterns.HasPeakHour {
		result["peak_hour"] = patterns.PeakHour
	}
	if patterns.HasBestDay {
		result["best_weekday"] = patterns.BestWeekday.String()
	}
	if len(patterns.HabitStreaks) > 0 {
		result["habit_streaks"] = patterns.HabitStreaks
	}

	return marshalResult(result)
}

// marshalResult renders a tool result as indented JSON.
func marshalResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

package system

import "github.com/milk9111/gravitywell/ecs"

const minPlayers = 2

// EndGameSystem ends the session once fewer than two ships remain.
type EndGameSystem struct{}

func NewEndGameSystem() *EndGameSystem {
	return &EndGameSystem{}
}

func (s *EndGameSystem) Update(ctx *Context) {
	if ctx == nil || ctx.World == nil || ctx.Session == nil {
		return
	}
	if _, ended := ctx.Ended(); ended {
		return
	}
	if ctx.World.Players.Len() >= minPlayers {
		return
	}
	summary := FormatSummary(ctx.Session.Scores)
	if ctx.Summary != nil {
		summary = ctx.Summary.Summarize(ctx.Session.Scores)
	}
	ctx.End(summary)
	ctx.push(ecs.EventSessionEnded, 0, summary)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prose generates the filler paragraphs written under each diary day.
// Selection is seeded by the day number so a given day always renders the
// same text, across runs and across machines.
package prose

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/diary-rewriter/pkg/types"
)

// Seed multipliers, one per pool. seed = day * multiplier.
const (
	introSeed      = 7
	middleSeed     = 13
	closingSeed    = 19
	problemSeed    = 23
	evaluationSeed = 29
)

// Generator picks templates for a day. It holds no mutable state.
type Generator struct {
	pools  *Pools
	casing types.CasingMode
	log    *zap.Logger
}

// NewGenerator returns a Generator over pools. A nil logger disables logging.
func NewGenerator(pools *Pools, casing types.CasingMode, log *zap.Logger) (*Generator, error) {
	if pools == nil {
		return nil, fmt.Errorf("template pools are required")
	}
	if err := pools.Validate(); err != nil {
		return nil, err
	}
	switch casing {
	case "":
		casing = types.CasingUnicode
	case types.CasingTurkish, types.CasingUnicode:
	default:
		return nil, fmt.Errorf("unsupported casing %q", casing)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{pools: pools, casing: casing, log: log}, nil
}

// Work returns the intro, middle, and closing paragraphs for a day.
func (g *Generator) Work(day int, topic string) [3]string {
	lowered := g.lower(topic)
	return [3]string{
		fill(g.pick("intro", g.pools.Intro, day, introSeed), lowered),
		g.pick("middle", g.pools.Middle, day, middleSeed),
		g.pick("closing", g.pools.Closing, day, closingSeed),
	}
}

// Problem returns the problems/solutions paragraph for a day.
func (g *Generator) Problem(day int) string {
	return g.pick("problem", g.pools.Problem, day, problemSeed)
}

// Evaluation returns the daily evaluation paragraph for a day.
func (g *Generator) Evaluation(day int, topic string) string {
	return fill(g.pick("evaluation", g.pools.Evaluation, day, evaluationSeed), g.lower(topic))
}

// Day generates all filler text for one entry.
func (g *Generator) Day(e types.DayEntry) types.DayContent {
	return types.DayContent{
		Work:       g.Work(e.Number, e.Topic),
		Problem:    g.Problem(e.Number),
		Evaluation: g.Evaluation(e.Number, e.Topic),
	}
}

func (g *Generator) pick(pool string, entries []string, day, multiplier int) string {
	idx := Index(day, multiplier, len(entries))
	g.log.Debug("template selected",
		zap.String("pool", pool),
		zap.Int("day", day),
		zap.Int("index", idx))
	return entries[idx]
}

func (g *Generator) lower(s string) string {
	tag := language.Und
	if g.casing == types.CasingTurkish {
		tag = language.Turkish
	}
	// cases.Caser is stateful; build one per call.
	return cases.Lower(tag).String(s)
}

// Index returns the pool index chosen for day under the given seed
// multiplier. Negative days are treated by absolute value.
func Index(day, multiplier, size int) int {
	if day < 0 {
		day = -day
	}
	return choose(uint64(day)*uint64(multiplier), size)
}

func fill(template, topic string) string {
	return strings.ReplaceAll(template, topicPlaceholder, topic)
}

package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/stashbot/internal/core"
)

// maxConcurrentTriggers bounds the trigger calls made for a single push.
const maxConcurrentTriggers = 4

// Trigger records the build decision taken for one ref change.
type Trigger struct {
	RefID  string
	Kind   core.BuildKind
	Commit string
	Err    error
}

// MarshalJSON renders Err as its message.
func (t Trigger) MarshalJSON() ([]byte, error) {
	out := struct {
		RefID  string         `json:"ref_id"`
		Kind   core.BuildKind `json:"kind"`
		Commit string         `json:"commit"`
		Error  string         `json:"error,omitempty"`
	}{RefID: t.RefID, Kind: t.Kind, Commit: t.Commit}
	if t.Err != nil {
		out.Error = t.Err.Error()
	}
	return json.Marshal(out)
}

// DispatchResult lists the builds a push started and the ones that failed to start.
type DispatchResult struct {
	Triggered []Trigger `json:"triggered"`
	Failed    []Trigger `json:"failed"`
}

// BuildTriggerJob decides, per updated ref, whether a push needs a PUBLISH or
// VERIFICATION build and asks the CI server to start it.
type BuildTriggerJob struct {
	store   core.ConfigStore
	trigger core.BuildTrigger
	logger  *slog.Logger
}

// NewBuildTriggerJob creates the job run by the dispatcher for every push.
func NewBuildTriggerJob(store core.ConfigStore, trigger core.BuildTrigger, logger *slog.Logger) *BuildTriggerJob {
	if store == nil {
		panic("config store cannot be nil")
	}
	if trigger == nil {
		panic("build trigger cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &BuildTriggerJob{store: store, trigger: trigger, logger: logger}
}

var _ core.Job = (*BuildTriggerJob)(nil)

// Run implements core.Job.
func (j *BuildTriggerJob) Run(ctx context.Context, event *core.PushEvent) error {
	_, err := j.Dispatch(ctx, event)
	return err
}

// Dispatch evaluates every ref change of the push. It fails only when the
// repository configuration cannot be read, in which case nothing is
// triggered. A failed trigger is recorded and does not affect other refs.
func (j *BuildTriggerJob) Dispatch(ctx context.Context, event *core.PushEvent) (*DispatchResult, error) {
	if event == nil || event.Repository == nil {
		return nil, fmt.Errorf("push event has no repository")
	}
	repo := event.Repository

	rc, err := j.store.GetRepoConfig(ctx, repo.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository config for %s: %w", repo, err)
	}

	result := &DispatchResult{}
	if !rc.CIEnabled {
		j.logger.Debug("CI disabled for repository", "repo", repo.String())
		return result, nil
	}

	rules := newBranchRules(rc, j.logger.With("repo", repo.String()))

	decisions := make([]*Trigger, len(event.RefChanges))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentTriggers)

	for i, change := range event.RefChanges {
		if change.IsDelete() {
			j.logger.Debug("skipping deleted ref", "repo", repo.String(), "ref", change.RefID)
			continue
		}
		kind, ok := rules.match(change.RefID)
		if !ok {
			continue
		}

		g.Go(func() error {
			t := &Trigger{RefID: change.RefID, Kind: kind, Commit: change.ToHash}
			defer func() {
				if r := recover(); r != nil {
					j.logger.Error("build trigger panicked", "repo", repo.String(), "ref", change.RefID, "panic", r)
					t.Err = fmt.Errorf("trigger panicked: %v", r)
				}
				decisions[i] = t
			}()

			j.logger.Info("triggering build",
				"repo", repo.String(),
				"ref", change.RefID,
				"kind", kind,
				"commit", change.ToHash,
			)
			if err := j.trigger.TriggerBuild(gctx, repo, kind, change.ToHash); err != nil {
				j.logger.Error("failed to trigger build",
					"repo", repo.String(),
					"ref", change.RefID,
					"kind", kind,
					"error", err,
				)
				t.Err = err
			}
			// Failures stay in the result so sibling triggers keep running.
			return nil
		})
	}
	_ = g.Wait()

	for _, t := range decisions {
		switch {
		case t == nil:
		case t.Err != nil:
			result.Failed = append(result.Failed, *t)
		default:
			result.Triggered = append(result.Triggered, *t)
		}
	}
	return result, nil
}

// branchRules holds the compiled publish and verify patterns of a repository.
// A nil pattern never matches.
type branchRules struct {
	publish *regexp.Regexp
	verify  *regexp.Regexp
}

func newBranchRules(rc *core.RepoConfig, logger *slog.Logger) *branchRules {
	return &branchRules{
		publish: compileBranchRegex(rc.PublishBranchRegex, "publish", logger),
		verify:  compileBranchRegex(rc.VerifyBranchRegex, "verify", logger),
	}
}

// match returns the build kind for a ref. Publish wins when both patterns
// match the same ref.
func (r *branchRules) match(refID string) (core.BuildKind, bool) {
	if r.publish != nil && r.publish.MatchString(refID) {
		return core.BuildPublish, true
	}
	if r.verify != nil && r.verify.MatchString(refID) {
		return core.BuildVerification, true
	}
	return "", false
}

// compileBranchRegex anchors the pattern so it has to match the whole ref.
// The pattern is validated on its own first: wrapping an unbalanced pattern
// can yield a valid expression with the anchors split across alternatives.
func compileBranchRegex(pattern, name string, logger *slog.Logger) *regexp.Regexp {
	if pattern == "" {
		return nil
	}
	if _, err := regexp.Compile(pattern); err != nil {
		logger.Warn("ignoring invalid branch regex", "rule", name, "regex", pattern, "error", err)
		return nil
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		logger.Warn("ignoring invalid branch regex", "rule", name, "regex", pattern, "error", err)
		return nil
	}
	return re
}

package releases

import (
	"fmt"

	"github.com/quayside-dev/stride/internal/messages"
	"github.com/quayside-dev/stride/internal/run"
	"github.com/quayside-dev/stride/internal/state"
)

// BumpVersion discovers the current project version, applies the rule, and
// records the result in the release sub-state. In real mode the new version
// is written back to the manifest it came from; in dry-run mode only the
// preview line is emitted. Independent of issue selection.
func BumpVersion(rt run.Type, rule Rule) (run.Type, error) {
	pv, err := GetVersion(rt.Dir)
	if err != nil {
		return rt, err
	}
	next, err := Bump(pv.Version, rule)
	if err != nil {
		return rt, fmt.Errorf(messages.ReleaseWhileBumpingFmt, err)
	}
	if rt.DryRun {
		fmt.Fprintf(rt.Out, messages.ReleaseWouldBumpFmt, pv.source.Name(), pv.Version, next)
	} else {
		if err := setVersion(rt.Dir, PackageVersion{Version: next, source: pv.source}); err != nil {
			return rt, err
		}
	}
	rt.State.Release = state.Bumped{Version: next}
	return rt, nil
}

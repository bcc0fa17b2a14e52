package translatetests

import (
	"golang.org/x/sync/errgroup"

	"github.com/sinhala-qa/singlish-contract-tests/browser"
	"github.com/sinhala-qa/singlish-contract-tests/config"
	"github.com/sinhala-qa/singlish-contract-tests/evidence"
	"github.com/sinhala-qa/singlish-contract-tests/framework"
	"github.com/sinhala-qa/singlish-contract-tests/scenarios"
)

// TestName is the identifier a scenario gets in results and filters: the
// stable id plus the human-readable name, so -run/-skip patterns can select
// by either.
func TestName(sc scenarios.Scenario) string {
	return sc.ID + ": " + sc.Name
}

// RunTestSuite executes every scenario and returns the collected results.
//
// Scenarios are independent units of work: each gets its own browser page,
// its own retry budget, and its own timeouts. The profile decides whether
// they run sequentially (CI) or on parallel workers (local). A failure in one
// scenario never aborts the others.
func RunTestSuite(
	driver *browser.Driver,
	profile *config.Profile,
	list []scenarios.Scenario,
	filter framework.Filter,
	testLogger framework.TestLogger,
	recorder *evidence.Recorder,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		var group errgroup.Group
		group.SetLimit(profile.Workers())
		for _, sc := range list {
			sc := sc
			group.Go(func() error {
				c.Run(TestName(sc), func(c *framework.Context) {
					t := &T{
						context:  c,
						profile:  profile,
						driver:   driver,
						recorder: recorder,
					}
					t.runScenario(sc)
				})
				return nil
			})
		}
		_ = group.Wait() // scenario failures are in the results, not errors
	})
}

package router

import "context"

// Classify evaluates every rule in order. The final rule always matches, so
// Candidates is never empty.
func (r *HeuristicRouter) Classify(ctx context.Context, in Input) RouterOutput {
	n := Normalize(in)

	var candidates []Intent
	for _, rule := range r.rules {
		if rule.Match(n) {
			candidates = append(candidates, rule.Intent)
		}
	}

	out := RouterOutput{Intent: IntentAnswer, Candidates: candidates}
	if len(candidates) > 0 {
		out.Intent = candidates[0]
	}

	r.l.Debugf(ctx, "%s: intent=%s candidates=%v pending=%s", LogPrefixClassify, out.Intent, candidates, in.Pending)
	return out
}

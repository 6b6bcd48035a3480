package searcher

import "math"

type Option func(s *settings)

type settings struct {
	alpha      float64
	beta       float64
	rootPolicy RootPolicy
}

func defaultSettings() settings {
	return settings{
		alpha:      math.Inf(-1),
		beta:       math.Inf(1),
		rootPolicy: TolerateTerminalRoot,
	}
}

// WithWindow narrows the initial [alpha, beta] window. The window is not
// required to be ordered: alpha >= beta is accepted and searched as given.
func WithWindow(alpha, beta float64) Option {
	return func(s *settings) {
		if !math.IsNaN(alpha) && !math.IsNaN(beta) {
			s.alpha = alpha
			s.beta = beta
		}
	}
}

func WithRootPolicy(policy RootPolicy) Option {
	return func(s *settings) {
		s.rootPolicy = policy
	}
}

// Package activation defines the pluggable nonlinearity used by a network.
//
// An Activation is a pair of scalar functions:
//
//	Func(x)       — the nonlinearity applied to a pre-activation value x.
//	Derivative(y) — its derivative expressed through the OUTPUT y = Func(x).
//
// Expressing the derivative through the output lets backpropagation reuse the
// layer outputs cached during the forward pass instead of keeping
// pre-activation values around. The trade-off: only functions whose
// derivative can be written in terms of their own output fit this contract
// (the logistic sigmoid does: σ'(x) = y(1−y)).
//
// Two ways to supply one:
//
//	activation.Sigmoid{}                   // the default
//	activation.NewFuncs(f, d)              // any plain function pair
package activation

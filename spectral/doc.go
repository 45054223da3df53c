// Package spectral turns a recurrence result into effective-resistance
// estimates, one per truncation order.
//
// The pipeline is Kappa → PsiApprox → CumulativeSquaredNorm →
// EffectiveResistances; Aggregate runs all four on a *lanczos.Result.
//
// The cumulative squared norm never decreases with the order, so the
// estimate sequence never increases. A sequence that ends early (the
// recurrence exhausted its subspace) simply yields fewer orders. Callers
// treat an empty sequence as an infinite resistance; Estimate.Final does so.
package spectral

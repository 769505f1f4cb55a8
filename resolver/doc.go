// Package resolver orders variables so that every variable a constraint
// reads is generated before the variable itself.
//
// Dependencies are derived from the constraint's linked fields through
// model.Constraint.Dependencies; the convenience list Variable.Dependencies
// is never consulted. The generators read exactly the same fields, so a
// valid order here is a valid generation order.
//
// Order runs a three-colour depth-first search (White, Gray, Black). Roots
// are taken in input order and dependencies in field order, so the result is
// stable for a fixed input. Ids that match no declared variable are skipped.
// Reaching a Gray variable again means a cycle; Order returns a *CycleError
// naming the variable that closed it.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package resolver

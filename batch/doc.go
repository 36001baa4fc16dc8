// Package batch counts showdown outcomes over a text list of deals.
//
// Each input line holds ten card codes separated by whitespace: the first
// five are player one's hand, the last five player two's. The evaluator
// reports how many deals player one wins or ties, together with a summary
// of wins, ties, losses and parsing quirks.
//
// Unknown suit codes are mapped to Diamonds unless Options.StrictSuits is
// set. Existing hand files depend on that behaviour, so it stays the
// default even though it hides typos.
//
// Lines are parsed sequentially and the first malformed line aborts the
// batch with a *LineError. Comparisons may then run on several workers;
// only the totals are kept, so the order of evaluation does not matter.
package batch

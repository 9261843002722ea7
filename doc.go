// Package clubfolio implements the accounting engine of a pooled investment
// club: members contribute cash, the fund trades assets, members withdraw,
// and the fund's per-share value (NAV, or quote-part) is derived and
// snapshotted over time.
//
// The core functionalities include:
//   - Valuation: a pure, deterministic function turning current holdings and
//     market prices into a PortfolioSummary (NAV per share, net assets,
//     latent P/L).
//   - Capital flow: issuing and redeeming club shares on deposits and
//     withdrawals, tracking per-member cost basis and estimating the
//     withdrawal tax.
//   - Order execution: buying and selling tickers against the fund's cash,
//     maintaining weighted-average acquisition costs and accruing the
//     realized-gain tax provision on sells.
//   - Snapshots: freezing valuations into an immutable, date-ordered NAV
//     history.
//
// Every engine operation is a pure transformation: it takes the current
// Club/Member/Asset snapshot plus externally supplied prices, and returns
// new, immutable records together with an append-only Transaction. The
// Manager serializes the read-compute-write cycles of a club and delegates
// durability to a Store and quotes to a PriceProvider.
//
// This package serves as the foundational logic for the `clubfolio`
// command-line tool.
package clubfolio

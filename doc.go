// Package bloglist implements the core of a small content-management
// backend: users own blog posts, authenticate with signed bearer tokens,
// and mutate only the resources they own.
//
// The root package carries the domain: models, credential verification,
// password policy, token issuance/validation, the ownership guard, and the
// bun-backed repositories. HTTP transport lives in the server package,
// bearer-token middleware in middleware/tokenware, and the aggregate
// statistics engine in stats.
package bloglist

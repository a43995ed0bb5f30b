// Package cueload compiles declarative CUE query specs into statements.
//
// A spec file declares queries as structs of clause fragments:
//
//	query: findFriends: {
//		match:   ["(n:Person)-[:KNOWS]->(m)"]
//		where:   ["n.name = $name"]
//		return:  ["m"]
//		orderBy: ["m.name"]
//		limit:   10
//	}
//
// Fragments are admitted in the canonical Cypher clause order (START, MATCH,
// OPTIONAL MATCH, UNWIND, WHERE, CREATE, MERGE, SET, REMOVE, DELETE, WITH,
// RETURN, ORDER BY, SKIP, LIMIT). Multiple where fragments are admitted
// consecutively and therefore merge into a single conjunction.
//
// Fragment text is emitted verbatim into the rendered statement - the loader
// constructs clause objects from data, it never parses Cypher.
package cueload

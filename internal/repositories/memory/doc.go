// Package memory holds process-local implementations of the repository
// interfaces. They back STORE=memory for local runs and serve as the
// persistence layer in tests. Contracts match the SQL and Mongo stores,
// including the unique (medicine name, requester) pair on requests.
package memory

package cache

import (
	"google.golang.org/grpc"

	api "github.com/ehrlich-b/logstore/api/v1"
)

// Node is the cache's own RPC surface. ExecuteOperation and CompareState
// are declared for a future coordination protocol and respond Unimplemented
// until it exists.
type Node struct {
	api.UnimplementedCacheServer

	store *Store
}

// NewNode wraps store behind the (stubbed) Cache service
func NewNode(store *Store) *Node {
	return &Node{store: store}
}

// Register registers the Cache service on g
func (n *Node) Register(g *grpc.Server) {
	api.RegisterCacheServer(g, n)
}

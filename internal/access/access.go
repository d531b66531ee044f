// Package access decides who may read or change a FileNode.
// Owners can do anything; everyone else can only read public nodes.
package access

import "filesmanager/internal/model"

// Anonymous is the requester id used when no valid session was presented.
const Anonymous = ""

// CanRead reports whether requesterID may see node and its content.
func CanRead(requesterID string, node *model.FileNode) bool {
	if node == nil {
		return false
	}
	return node.IsPublic || isOwner(requesterID, node)
}

// CanMutate reports whether requesterID may change node. Visibility does not matter.
func CanMutate(requesterID string, node *model.FileNode) bool {
	if node == nil {
		return false
	}
	return isOwner(requesterID, node)
}

func isOwner(requesterID string, node *model.FileNode) bool {
	return requesterID != Anonymous && requesterID == node.OwnerID
}

package auth

import "github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"

// Operation enumerates everything the API can do to an article or to the
// accounts around it.
type Operation string

const (
	OpCreateArticle  Operation = "article.create"
	OpEditArticle    Operation = "article.edit"
	OpDeleteArticle  Operation = "article.delete"
	OpApproveArticle Operation = "article.approve"
	OpRejectArticle  Operation = "article.reject"
	OpReadArticle    Operation = "article.read"
	OpRecordView     Operation = "article.view"
	OpBrowseArticles Operation = "article.browse"
	OpPendingQueue   Operation = "article.pending_queue"
	OpAdminSearch    Operation = "article.admin_search"
	OpCreateComment  Operation = "comment.create"
	OpManageUsers    Operation = "user.manage"
	OpManageCategory Operation = "category.manage"
)

// Allow is the single authorization decision for the portal: a pure function
// of the caller's role, the operation, whether the caller owns the target and
// the target's current status. Ownership beats role where both apply — an
// admin is not the owner of contributor content and cannot edit it, only
// moderate it.
func Allow(role models.Role, op Operation, isOwner bool, status models.ArticleStatus) bool {
	switch op {
	case OpCreateArticle:
		return role == models.RoleContributor
	case OpEditArticle, OpDeleteArticle:
		return isOwner
	case OpApproveArticle, OpRejectArticle:
		return role == models.RoleAdmin
	case OpReadArticle, OpRecordView:
		return CanReadArticle(role, isOwner, status)
	case OpBrowseArticles, OpCreateComment:
		return role.Valid()
	case OpPendingQueue, OpAdminSearch, OpManageUsers, OpManageCategory:
		return role == models.RoleAdmin
	}
	return false
}

// CanReadArticle is the visibility rule: approved articles are readable by
// any authenticated caller; drafts and rejected articles only by their
// author or an admin. Callers who fail this check must be answered with the
// same not-found response a missing id gets, so hidden drafts do not leak.
func CanReadArticle(role models.Role, isOwner bool, status models.ArticleStatus) bool {
	if status == models.StatusApproved {
		return role.Valid()
	}
	return isOwner || role == models.RoleAdmin
}

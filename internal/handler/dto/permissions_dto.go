package dto

// RepoPermissionsRequest はPUT /api/repositories/:repo/permissions のボディ。
// リポジトリの権限集合とパターン集合を丸ごと置き換える。
type RepoPermissionsRequest struct {
	Permissions     map[string][]string `json:"permissions"`
	IncludePatterns []string            `json:"include_patterns"`
}

// PermissionsResponse はリポジトリの権限一覧のレスポンス
type PermissionsResponse struct {
	Permissions map[string][]string `json:"permissions"`
}

// PatternsResponse はリポジトリの許可パスパターン一覧のレスポンス
type PatternsResponse struct {
	IncludePatterns []string `json:"include_patterns"`
}

// RepositoriesResponse はリポジトリ名一覧のレスポンス
type RepositoriesResponse struct {
	Repositories []string `json:"repositories"`
}

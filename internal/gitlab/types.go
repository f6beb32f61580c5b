// Package gitlab provides a typed client for the GitLab repository API:
// branches, tags, directory trees, raw file and blob content, and
// full-repository archive downloads.
package gitlab

// CommitSummary is the abbreviated commit object embedded in branch and
// tag responses.
type CommitSummary struct {
	ID             string   `json:"id"`
	Message        string   `json:"message"`
	ParentIDs      []string `json:"parent_ids"`
	AuthoredDate   string   `json:"authored_date"`
	AuthorName     string   `json:"author_name"`
	AuthorEmail    string   `json:"author_email"`
	CommittedDate  string   `json:"committed_date"`
	CommitterName  string   `json:"committer_name"`
	CommitterEmail string   `json:"committer_email"`
}

// Branch represents a repository branch
type Branch struct {
	Name               string        `json:"name"`
	Merged             bool          `json:"merged"`
	Protected          bool          `json:"protected"`
	DevelopersCanPush  bool          `json:"developers_can_push"`
	DevelopersCanMerge bool          `json:"developers_can_merge"`
	Commit             CommitSummary `json:"commit"`
}

// Release holds the release notes attached to a tag
type Release struct {
	TagName     string `json:"tag_name"`
	Description string `json:"description"`
}

// Tag represents a repository tag
type Tag struct {
	Name    string        `json:"name"`
	Message string        `json:"message"`
	Commit  CommitSummary `json:"commit"`
	Release *Release      `json:"release"`
}

// TreeItem is a single entry in a repository tree listing. Type is
// "tree" for directories and "blob" for files.
type TreeItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path"`
	Mode string `json:"mode"`
}

package handlers

// IssueTokenForTest exposes issueToken to the external handlers_test package.
var IssueTokenForTest = issueToken

// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"maps"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ManifestNotFoundId Id = iota + 1
	AmbiguousLayoutId
	InvalidManifestId
	ManifestParseErrorId
	DirectoryMismatchId
	StagingFailedId
	ArchiveFailedId
	ConfigLoadFailedId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation about the issue type
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	var extraMd strings.Builder
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd.WriteString("\n\n## See also:\n")
		for _, link := range i.docLinks {
			extraMd.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			extraMd.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(string(i.mdMsg)+extraMd.String(), stylePath)
}

const modStructureDoc HttpLink = "https://wiki.factorio.com/Tutorial:Mod_structure"

var (
	render = glamour.Render

	manifestNotFoundIssue = &Issue{
		id: ManifestNotFoundId,
		mdMsg: `
# No info.json found!

We searched the repository for a mod manifest but couldn't find one.

## Search locations (in order):
1. The repository root
2. Every directory directly below the root, hidden ones included

Deeper directories are never searched.

## Things you can try:
- Run modpack from the repository root, or point it there:
~~~
$ modpack -C /path/to/repository
~~~

- Move the mod into a directory named after it, next to the repository files:
~~~
my-repo/
  README.md
  my-mod/
    info.json
    control.lua
~~~`,
		docLinks: []HttpLink{modStructureDoc},
	}

	ambiguousLayoutIssue = &Issue{
		id: AmbiguousLayoutId,
		mdMsg: `
# More than one info.json found!

The repository holds several mod manifests, so we cannot tell which mod to package.
modpack packages exactly one mod per repository and never guesses.

## Things you can try:
- Remove or rename the extra manifests listed above
- Keep either a single manifest at the repository root or a single mod directory below it
- Split the mods into separate repositories`,
		docLinks: []HttpLink{modStructureDoc},
	}

	invalidManifestIssue = &Issue{
		id: InvalidManifestId,
		mdMsg: `
# Invalid info.json!

The manifest was read but does not describe a mod.

## Requirements:
- The document must be a JSON object
- **name** and **version** must be present and be non-empty strings

## Example:
~~~json
{
  "name": "my-mod",
  "version": "1.0.0",
  "title": "My Mod",
  "author": "me",
  "factorio_version": "2.0"
}
~~~`,
		docLinks: []HttpLink{modStructureDoc + "#info.json"},
	}

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to parse info.json!

The manifest is not valid JSON.

## Common issues:
- Trailing commas after the last field
- Single quotes instead of double quotes
- Comments (JSON does not allow them)
- Unbalanced braces

## Things you can try:
- Check the error message above for the line and column
- Run the file through a JSON validator`,
		docLinks: []HttpLink{modStructureDoc + "#info.json"},
	}

	directoryMismatchIssue = &Issue{
		id: DirectoryMismatchId,
		mdMsg: `
# Mod directory name does not match!

The game requires the mod directory to carry exactly the **name** declared in info.json.
We never rename directories for you.

## Things you can try:
- Rename the directory to the name shown above
- Or change **name** in info.json to match the directory

Note that changing a published mod's name creates a different mod on the portal.`,
		docLinks: []HttpLink{modStructureDoc},
	}

	stagingFailedIssue = &Issue{
		id: StagingFailedId,
		mdMsg: `
# Failed to stage the mod!

We could not copy the mod into a temporary directory before archiving it.
Your files were not modified and no archive was written.

## Common causes:
- The temporary directory is full or not writable
- A file in the mod is unreadable
- A symlink in the mod points to a missing file

## Things you can try:
- Check free space in your temporary directory (see $TMPDIR)
- Run with verbose mode to see which file failed:
~~~
$ modpack --verbose
~~~`,
	}

	archiveFailedIssue = &Issue{
		id: ArchiveFailedId,
		mdMsg: `
# Failed to write the archive!

The mod was staged but the zip archive could not be written.
Any partial archive has been removed.

## Things you can try:
- Make sure the output directory (dist/ by default) is writable
- Make sure nothing else holds the archive open
- Check free disk space`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The file passed with --config could not be loaded.

## Supported formats:
- CUE (` + "`.cue`" + `)
- TOML (` + "`.toml`" + `)
- YAML (` + "`.yaml`, `.yml`" + `)

## Example configuration:
~~~cue
manifest: "info.json"
dist_dir: "dist"
exclude: ["*.xcf", "screenshots"]

ui: {
  color: "auto"
  verbose: false
}
~~~

## Things you can try:
- Check the error message above for the offending field
- Run without --config to use the defaults`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to perform this operation.

## Common causes:
- The output directory is owned by another user
- A mod file is not readable

## Things you can try:
- Check file and directory permissions
- Run modpack from a directory you own`,
	}

	issues = map[Id]*Issue{
		manifestNotFoundIssue.Id():   manifestNotFoundIssue,
		ambiguousLayoutIssue.Id():    ambiguousLayoutIssue,
		invalidManifestIssue.Id():    invalidManifestIssue,
		manifestParseErrorIssue.Id(): manifestParseErrorIssue,
		directoryMismatchIssue.Id():  directoryMismatchIssue,
		stagingFailedIssue.Id():      stagingFailedIssue,
		archiveFailedIssue.Id():      archiveFailedIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		permissionDeniedIssue.Id():   permissionDeniedIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for v := range maps.Values(issues) {
		values = append(values, v)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}

///////////////////////////////////////////////////////////////////////////////////////////////////
//                                                                                               //
//                                                                                               //
//         oooooo   oooooo     oooo           oooooo   oooooo     oooo         .o8               //
//          `888.    `888.     .8'             `888.    `888.     .8'         "888               //
//           `888.   .8888.   .8' oooo    ooo   `888.   .8888.   .8' .ooooo.   888oooo.          //
//            `888  .8'`888. .8'   `88.  .8'     `888  .8'`888. .8' d88' `88b  d88' `88b         //
//             `888.8'  `888.8'     `88..8'       `888.8'  `888.8'  888ooo888  888   888         //
//              `888'    `888'       `888'         `888'    `888'   888    .o  888   888         //
//               `8'      `8'         .8'           `8'      `8'    `Y8bod8P'  `Y8bod8P'         //
//                                .o..P'                                                         //
//                                `Y8P'                                                          //
//                                                                                               //
//                                                                                               //
//                              Copyright (C) 2024  Wyatt Sheffield                              //
//                                                                                               //
//                 This program is free software: you can redistribute it and/or                 //
//                 modify it under the terms of the GNU General Public License as                //
//                 published by the Free Software Foundation, either version 3 of                //
//                      the License, or (at your option) any later version.                      //
//                                                                                               //
//                This program is distributed in the hope that it will be useful,                //
//                 but WITHOUT ANY WARRANTY; without even the implied warranty of                //
//                 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the                 //
//                          GNU General Public License for more details.                         //
//                                                                                               //
//                   You should have received a copy of the GNU General Public                   //
//                         License along with this program.  If not, see                         //
//                                <https://www.gnu.org/licenses/>.                               //
//                                                                                               //
//                                                                                               //
///////////////////////////////////////////////////////////////////////////////////////////////////

package util

import (
	"path"
	"regexp"
	"strings"
	"unicode"
)

// NSSep separates namespaces in page and media ids.
const NSSep = ":"

var (
	repeatedSeparators = regexp.MustCompile(`[:_.-]*:[:_.-]*`)
	repeatedUnderscore = regexp.MustCompile(`_{2,}`)
	leafName           = regexp.MustCompile(`.*?/|.*?:`)
)

// CleanID normalizes a raw page or media id: lower case, whitespace and unsafe characters
// become underscores, '/' and ';' become namespace separators and separators are never
// doubled or left dangling at either end.
func CleanID(raw string) string {
	id := strings.ToLower(strings.TrimSpace(raw))
	id = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == ';' || r == ':':
			return ':'
		case r == '.' || r == '-' || r == '_':
			return r
		case unicode.IsSpace(r):
			return '_'
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		default:
			return '_'
		}
	}, id)
	id = repeatedUnderscore.ReplaceAllString(id, "_")
	id = repeatedSeparators.ReplaceAllString(id, NSSep)
	return strings.Trim(id, ":._-")
}

// NoNS strips every namespace (and path) prefix from id.
func NoNS(id string) string {
	return leafName.ReplaceAllString(id, "")
}

// IDToPath turns an id into a slash separated path relative to a storage root.
func IDToPath(id string) string {
	return strings.ReplaceAll(id, NSSep, "/")
}

// PathToID turns a slash separated path (with or without a leading slash) into an id.
func PathToID(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	return strings.ReplaceAll(p, "/", NSSep)
}

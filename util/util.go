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
	"fmt"
	"path/filepath"
	"runtime"
	"time"
)

// Timer reports the time between its call and the call of the returned function to report,
// usually a logger's Debug method.
func Timer(name string, report func(msg string, args ...any)) func() {
	start := time.Now()
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
		line = 0
	}
	return func() {
		report(name, "source", fmt.Sprintf("%s:%d", filepath.Base(file), line), "elapsed", time.Since(start))
	}
}

// ConcatUnique returns the elements of sliceA followed by the elements of sliceB with every
// repeated value dropped. The first occurrence of a value decides its position.
func ConcatUnique[T comparable](sliceA []T, sliceB []T) []T {
	seen := make(map[T]struct{}, len(sliceA)+len(sliceB))
	result := make([]T, 0, len(sliceA)+len(sliceB))
	for _, list := range [][]T{sliceA, sliceB} {
		for _, val := range list {
			if _, ok := seen[val]; ok {
				continue
			}
			seen[val] = struct{}{}
			result = append(result, val)
		}
	}
	return result
}

// Copyright 2025 jonaslundjonas. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package foldersheets synchronizes a Google Drive folder hierarchy with a Google Sheets worksheet.

The worksheet holds one folder per row with depth encoded as column offset - a folder at depth N
is written to column N, preceded by its ancestor names, with a 'Drive' marker in the first cell
of the first row. The tool is strictly additive: it creates folders that are missing remotely and
never renames, moves or deletes anything.

foldersheets supports the following commands:

  - authorise, to authorise application access to Google Sheets and Google Drive
  - import, to replace the worksheet with a snapshot of the Drive folder hierarchy
  - push, to create the folders listed in the worksheet that are missing from Drive
  - version, to display the current version
*/
package foldersheets

// This file is part of Gopherswan.
//
// Gopherswan is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherswan is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherswan.  If not, see <https://www.gnu.org/licenses/>.

// Package cartridgeloader is used to specify the ROM data that is to be
// loaded into the emulated console.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local-file and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/game.ws",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// The save file for a cartridge is kept next to the ROM file, with the same
// name and the ".sav" extension. See LoadSave() and WriteSave().
package cartridgeloader
